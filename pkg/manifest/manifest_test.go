package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, "strands-agents==1.2.3\nrequests\n")

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "strands-agents==1.2.3\nrequests\n", m.Text())
	assert.Equal(t, []string{"strands-agents==1.2.3", "requests"}, m.Lines())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestLines_Empty(t *testing.T) {
	path := writeManifest(t, "")
	m, err := Load(path)
	require.NoError(t, err)
	assert.Nil(t, m.Lines())
}

func TestMentionsAny(t *testing.T) {
	path := writeManifest(t, "boto3\nStrands-Agents==1.2.3\n")
	m, err := Load(path)
	require.NoError(t, err)

	assert.True(t, m.MentionsAny("strands-agents"))
	assert.True(t, m.MentionsAny("bedrock", "strands-agents"))
	assert.False(t, m.MentionsAny("bedrock"))
}

func TestSave_NewlineTerminated(t *testing.T) {
	path := writeManifest(t, "requests\n")
	m, err := Load(path)
	require.NoError(t, err)

	m.SetText("requests\nopenai==1.59.7")
	require.NoError(t, m.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "requests\nopenai==1.59.7\n", string(data))
}
