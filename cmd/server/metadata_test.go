package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcnursery/internal/metadata"
)

func TestSetupMetadataRegistry(t *testing.T) {
	reg := setupMetadataRegistry()

	assert.Len(t, reg.List(), 7)

	sampling, ok := reg.Get("sampling")
	require.True(t, ok)
	assert.Equal(t, metadata.TypeRegister, sampling.Type)
	assert.Equal(t, "sampleNo", sampling.Roles["identifier"])

	status, ok := sampling.Field("status")
	require.True(t, ok)
	assert.Equal(t, metadata.TypeEnum, status.Type)
	assert.Equal(t, []string{"received", "testing", "passed", "failed"}, status.Options)

	batch, ok := sampling.Field("batchNumber")
	require.True(t, ok)
	assert.True(t, batch.Required)

	suppliers, ok := reg.Get("supplier")
	require.True(t, ok)
	assert.Equal(t, metadata.TypeDirectory, suppliers.Type)
}
