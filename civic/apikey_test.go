// Copyright 2025 The Vote Simplified Authors
// SPDX-License-Identifier: Apache-2.0

package civic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAPIKeyFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")

	key, err := ResolveAPIKey(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "env-key", key)
}
