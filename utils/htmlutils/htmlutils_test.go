// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package htmlutils

import (
	"testing"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Shall the county issue bonds?",
			want: "Shall the county issue bonds?",
		},
		{
			name: "plain text whitespace collapsed",
			in:   "  Shall the county\n issue bonds?  ",
			want: "Shall the county issue bonds?",
		},
		{
			name: "simple markup removed",
			in:   "<p>Shall the county <b>issue bonds</b>?</p>",
			want: "Shall the county issue bonds ?",
		},
		{
			name: "nested blocks",
			in:   "<div><p>Measure B</p><p>General obligation bonds</p></div>",
			want: "Measure B General obligation bonds",
		},
		{
			name: "script body dropped",
			in:   "<p>yes</p><script>alert(1)</script>",
			want: "yes",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
