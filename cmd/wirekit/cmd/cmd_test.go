package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/wirekit/internal/wiredump"
)

func execute(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(bytes.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestEscapeCommandReadsStdin(t *testing.T) {
	out, err := execute(t, []byte{0x00, 'i', 't', '\'', 's'}, "escape")
	require.NoError(t, err)
	assert.Equal(t, `\x00it\'s`+"\n", out)
}

func TestUnescapeCommandRoundTrips(t *testing.T) {
	escaped, err := execute(t, []byte{0xde, 0xad, '\n', 'o', 'k'}, "escape")
	require.NoError(t, err)

	out, err := execute(t, []byte(escaped), "unescape")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad, '\n', 'o', 'k'}, []byte(out))
}

func TestUnescapeCommandTakesArgument(t *testing.T) {
	out, err := execute(t, nil, "unescape", `GET\x20/\r\n`)
	require.NoError(t, err)
	assert.Equal(t, "GET /\r\n", out)
}

func TestUnescapeCommandRejectsBadEscape(t *testing.T) {
	_, err := execute(t, []byte(`\x4`), "unescape")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestCleanCommandKeepSpacingFlag(t *testing.T) {
	out, err := execute(t, []byte("a\tb\x00"), "clean")
	require.NoError(t, err)
	assert.Equal(t, "a\tb.", out)

	out, err = execute(t, []byte("a\tb\x00"), "clean", "--keep-spacing=false")
	require.NoError(t, err)
	assert.Equal(t, "a.b.", out)
}

func TestHexdumpCommandReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.bin")
	require.NoError(t, os.WriteFile(path, []byte("GET / HTTP/1.1\r\n"), 0o644))

	out, err := execute(t, nil, "hexdump", path)
	require.NoError(t, err)
	assert.Equal(t, "0000000000  47 45 54 20 2f 20 48 54 54 50 2f 31 2e 31 0d 0a  GET / HTTP/1.1..\n", out)
}

func TestHexdumpCommandMissingFile(t *testing.T) {
	_, err := execute(t, nil, "hexdump", filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)
}

func TestHostCommand(t *testing.T) {
	out, err := execute(t, nil, "host", "example.com", "443", "--scheme", "https")
	require.NoError(t, err)
	assert.Contains(t, out, "host example.com valid=true")
	assert.Contains(t, out, "port 443 valid=true")
	assert.Contains(t, out, "hostport example.com\n")

	out, err = execute(t, nil, "host", "--scheme", "http", "--", "-bad-.example", "8080")
	require.NoError(t, err)
	assert.Contains(t, out, "valid=false")
	assert.Contains(t, out, "hostport -bad-.example:8080")
}

func TestHostCommandRejectsBadPort(t *testing.T) {
	_, err := execute(t, nil, "host", "example.com", "not-a-port")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port must be an integer")
}

func TestFramesCommandRendersCapture(t *testing.T) {
	raw, err := wiredump.EncodeFrame(wiredump.Frame{
		Header:  wiredump.Header{Magic: 0xEDCE1001, Version: 1, MessageID: 3, MessageType: 6},
		Payload: wiredump.EncodeFields([]wiredump.Field{{ID: 1, Type: wiredump.TypeString, Value: []byte("ok")}}),
	})
	require.NoError(t, err)

	out, err := execute(t, raw, "frames")
	require.NoError(t, err)
	assert.Contains(t, out, "type=report")
	assert.Contains(t, out, "value='ok'")
}

func TestFramesCommandTruncatedCapture(t *testing.T) {
	raw, err := wiredump.EncodeFrame(wiredump.Frame{
		Header: wiredump.Header{Magic: 0xEDCE1001, Version: 1, MessageID: 1, MessageType: 5},
	})
	require.NoError(t, err)
	capture := append(raw, 0x01, 0x02)

	out, err := execute(t, capture, "frames")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 1 complete frames")
	assert.Contains(t, out, "message_id=1")
}

func TestFramesCommandCustomNames(t *testing.T) {
	// flag values stick to the command across Execute calls
	t.Cleanup(func() { _ = framesCmd.Flags().Set("names", "") })

	dir := t.TempDir()
	namesPath := filepath.Join(dir, "names.toml")
	content := `
[messages]
ping = 6

[magics]
myproto = 0x11223344
`
	require.NoError(t, os.WriteFile(namesPath, []byte(content), 0o644))

	raw, err := wiredump.EncodeFrame(wiredump.Frame{
		Header: wiredump.Header{Magic: 0x11223344, Version: 2, MessageID: 9, MessageType: 6},
	})
	require.NoError(t, err)

	out, err := execute(t, raw, "frames", "--names", namesPath)
	require.NoError(t, err)
	assert.Contains(t, out, "type=ping")
	assert.Contains(t, out, "magic=0x11223344 (myproto)")
}

func TestLoadNamingOverlaysOnlyListedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.toml")
	content := `
[messages]
hello = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	naming, err := loadNaming(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", naming.Messages.NameOr(1, "?"))
	assert.Equal(t, "?", naming.Messages.NameOr(6, "?"))
	assert.Equal(t, "u32", naming.Types.NameOr(wiredump.TypeU32, "?"))
}

func TestLoadNamingRejectsDuplicateValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.toml")
	content := `
[messages]
a = 1
b = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := loadNaming(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "messages")
}

func TestLoadNamingMissingFile(t *testing.T) {
	_, err := loadNaming(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestReadInputPrefersFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.bin")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o644))

	c := &cobra.Command{}
	c.SetIn(strings.NewReader("from stdin"))

	data, err := readInput(c, []string{path})
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))

	data, err = readInput(c, nil)
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))
}
