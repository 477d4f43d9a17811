package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
)

func TestNewServer(t *testing.T) {
	t.Run("nil analyzer factory returns error", func(t *testing.T) {
		ports := &Ports{
			Settings: domain.DefaultAnalysisSettings,
			Registry: &mockRegistry{},
		}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingAnalyzer)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockAnalyzer{}))
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil analyzer factory returns error", func(t *testing.T) {
		ports := &Ports{
			Settings: domain.DefaultAnalysisSettings,
			Registry: &mockRegistry{},
		}
		assert.ErrorIs(t, ports.Validate(), ErrMissingAnalyzer)
	})

	t.Run("nil settings returns error", func(t *testing.T) {
		ports := validPorts(&mockAnalyzer{})
		ports.Settings = nil
		assert.ErrorIs(t, ports.Validate(), ErrMissingSettings)
	})

	t.Run("nil registry returns error", func(t *testing.T) {
		ports := validPorts(&mockAnalyzer{})
		ports.Registry = nil
		assert.ErrorIs(t, ports.Validate(), ErrMissingRegistry)
	})

	t.Run("history is optional", func(t *testing.T) {
		ports := validPorts(&mockAnalyzer{})
		ports.History = nil
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := validPorts(&mockAnalyzer{})
		ports.History = &mockHistoryService{}
		assert.NoError(t, ports.Validate())
	})
}
