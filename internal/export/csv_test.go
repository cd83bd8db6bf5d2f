package export

import (
	"strings"
	"testing"

	"github.com/alexanderramin/yabane/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMemberCSV_FormatDetails(t *testing.T) {
	data, err := BuildMemberCSV([]*domain.Member{
		{Name: "Ann", Organization: "Acme", Role: "lead"},
	})
	require.NoError(t, err)

	text := string(data)
	assert.True(t, strings.HasPrefix(text, utf8BOM), "BOM prefix")
	assert.Contains(t, text, "\r\n", "CRLF line endings")
	assert.Contains(t, text, "Organization,Name,Role,Email,Note")
	assert.Contains(t, text, "Acme,Ann,lead,,")
}

func TestMemberCSV_RoundTripWithEscaping(t *testing.T) {
	in := []*domain.Member{
		{Name: `Bob "the builder"`, Organization: "Acme, Inc.", Note: "line one\nline two"},
		{Name: "Ann", Email: "ann@example.com"},
	}
	data, err := BuildMemberCSV(in)
	require.NoError(t, err)

	out, err := ParseMemberCSV(data, 7)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(7), out[0].ProjectID)
	assert.Equal(t, `Bob "the builder"`, out[0].Name)
	assert.Equal(t, "Acme, Inc.", out[0].Organization)
	assert.Equal(t, "line one\nline two", out[0].Note)
	assert.Equal(t, "ann@example.com", out[1].Email)
}

func TestParseMemberCSV_HeaderOnlyAndShortRows(t *testing.T) {
	out, err := ParseMemberCSV([]byte("Organization,Name,Role,Email,Note\r\n"), 1)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = ParseMemberCSV([]byte("Organization,Name\r\nAcme,Ann\r\n"), 1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Ann", out[0].Name)
	assert.Equal(t, "", out[0].Role, "missing fields padded")
}
