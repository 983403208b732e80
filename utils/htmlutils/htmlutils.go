// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

// Package htmlutils provides utility functions for working with HTML.
package htmlutils

import (
	"strings"

	"golang.org/x/net/html"
)

// Appends the text content of n (and its children) to sb, separating
// blocks with a single space.
func nodeText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		tmp := strings.TrimSpace(n.Data)
		if len(tmp) > 0 {
			if sb.Len() != 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(tmp)
		}

		return
	}

	// Script and style bodies are not display text.
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		nodeText(child, sb)
	}
}

// StripTags returns the display text of an HTML fragment. Ballot and
// referendum text coming from state sources sometimes carries markup;
// this reduces it to plain text. Plain input comes back trimmed but
// otherwise unchanged.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return collapseSpace(s)
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return collapseSpace(s)
	}

	var sb strings.Builder

	nodeText(doc, &sb)

	return sb.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
