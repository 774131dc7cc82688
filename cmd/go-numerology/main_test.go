package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-numerology/internal/app"
	"github.com/tartampluch/go-numerology/internal/compat"
	"github.com/tartampluch/go-numerology/internal/config"
	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var midJuly2024 = time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

var mario = []string{"--first", "Mario", "--last", "Rossi", "--birth", "15/06/1985"}

const marioCard = `BEGIN:VCARD
VERSION:3.0
FN:Mario Rossi
BDAY:1985-06-15
END:VCARD
`

// execute runs the command line against a fresh cli with no settings file.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c := &cli{
		in:     strings.NewReader(stdin),
		out:    &out,
		errOut: io.Discard,
		clock:  fixedClock{midJuly2024},
	}
	defer c.close()

	root := newRootCmd(c)
	root.SetArgs(append(args, "--"+config.FlagConfig, filepath.Join(t.TempDir(), "none.yaml")))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func args(cmd string, extra ...string) []string {
	return append(append([]string{cmd}, mario...), extra...)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", config.CmdVersion)
	require.NoError(t, err)
	assert.Contains(t, out, config.AppName+" version "+config.Version)
}

func TestMap_JSON(t *testing.T) {
	out, err := execute(t, "", args(config.CmdMap, "--format", "json", "--year", "2024")...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Mario Rossi", doc[config.KeyFullName])
	assert.Equal(t, "15/06/1985", doc[config.KeyBirthDate])
	assert.EqualValues(t, 2024, doc[config.KeyReferenceYear])
	assert.EqualValues(t, 8, doc[config.KeyLifePath1])
	assert.NotContains(t, doc, config.KeyQuadrimesters)
}

func TestMap_WithCalendar(t *testing.T) {
	out, err := execute(t, "", args(config.CmdMap, "--format", "json", "--calendar")...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Len(t, doc[config.KeyQuadrimesters], 6)
	assert.Len(t, doc[config.KeyTrimesters], 8)
}

func TestMap_Table(t *testing.T) {
	out, err := execute(t, "", args(config.CmdMap, "--format", "table")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Mappa Numerologica")
	assert.Contains(t, out, "Mario Rossi")
}

func TestMap_InputErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing birth", []string{config.CmdMap, "--first", "Mario", "--last", "Rossi"}, config.ErrMissingFlag},
		{"blank name", []string{config.CmdMap, "--first", " ", "--last", "Rossi", "--birth", "15/06/1985"}, config.ErrMissingFlag},
		{"bad date", []string{config.CmdMap, "--first", "Mario", "--last", "Rossi", "--birth", "31/02/1985"}, "--birth"},
		{"negative year", args(config.CmdMap, "--year", "-1"), config.ErrInvalidYear},
		{"unknown format", args(config.CmdMap, "--format", "xml"), config.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMap_OutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	out, err := execute(t, "", args(config.CmdMap, "--format", "yaml", "--out", path)...)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), config.KeyFullName+": Mario Rossi")
}

func TestTimeline_YAML(t *testing.T) {
	out, err := execute(t, "", args(config.CmdTimeline, "--format", "yaml")...)
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 81)
	assert.Equal(t, 1985, rows[0]["year"])
	assert.Equal(t, config.SeasonSpring, rows[0]["season"])
}

func TestCalendar_ICS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mario.ics")
	out, err := execute(t, "", args(config.CmdCalendar, "--ics", path, "--format", "json")...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Mario Rossi", doc[config.KeyFullName])
	assert.EqualValues(t, 2024, doc[config.KeyCalendarYear])

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ics := string(data)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Equal(t, 14, strings.Count(ics, "BEGIN:VEVENT"))
	assert.Contains(t, ics, "Micro ciclo Q1: 11 → 11")
}

func TestCompat_JSON(t *testing.T) {
	out, err := execute(t, "",
		config.CmdCompat, "--format", "json",
		"--first1", "Mario", "--last1", "Rossi", "--birth1", "15/06/1985",
		"--first2", "Anna", "--last2", "Bianchi", "--birth2", "02/03/1990",
	)
	require.NoError(t, err)

	var rep compat.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Len(t, rep.Static, len(compat.StaticTables))
	assert.Len(t, rep.Dynamic, 3)
	assert.NotEmpty(t, rep.Disclaimer)
}

func TestCompat_SecondPersonRequired(t *testing.T) {
	_, err := execute(t, "", config.CmdCompat,
		"--first1", "Mario", "--last1", "Rossi", "--birth1", "15/06/1985")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.FlagFirst2)
}

func TestEnergy_ExtendsDocument(t *testing.T) {
	out, err := execute(t, "", args(config.CmdEnergy, "--format", "json")...)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, config.KeyFullName)
	assert.Contains(t, doc, config.KeyCohesiveUnion)
	assert.Contains(t, doc, config.KeyEnergeticUnion)
	assert.Contains(t, doc, config.KeyInterconnect)
}

func TestVibration(t *testing.T) {
	out, err := execute(t, "", "vibration", "Di", "--format", "json")
	require.NoError(t, err)

	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.EqualValues(t, 13, v["raw"])
	assert.EqualValues(t, 4, v["value"])
	assert.EqualValues(t, 13, v["karmic_base"])

	_, err = execute(t, "", "vibration", "Di", "--kind", "planet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrVibrationKind)

	_, err = execute(t, "", "vibration")
	assert.Error(t, err)
}

func TestAddress(t *testing.T) {
	out, err := execute(t, "", "address", "Via", "Roma", "10", "--format", "json")
	require.NoError(t, err)

	var a map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, "Via Roma 10", a["input"])
	assert.Equal(t, config.AddressSourceNumber, a["source"])
	assert.EqualValues(t, 1, a["value"])
}

func TestImport_Local(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "book.vcf")
	require.NoError(t, os.WriteFile(book, []byte(marioCard), config.FilePermUserRW))
	icsPath := filepath.Join(dir, "feed.ics")

	out, err := execute(t, "", config.CmdImport,
		"--source", config.SourceModeLocal, "--path", book,
		"--ics", icsPath, "--format", "json")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Mario Rossi", docs[0][config.KeyFullName])

	ics, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	assert.Equal(t, 14, strings.Count(string(ics), "BEGIN:VEVENT"))
}

func TestImport_NoContacts(t *testing.T) {
	book := filepath.Join(t.TempDir(), "empty.vcf")
	require.NoError(t, os.WriteFile(book, nil, config.FilePermUserRW))

	_, err := execute(t, "", config.CmdImport, "--path", book)
	assert.EqualError(t, err, config.ErrNoContacts)
}

func TestLogin_StoresPassword(t *testing.T) {
	keyring.MockInit()

	out, err := execute(t, "s3cret\n", config.CmdLogin, "--user", "mario", "--password-stdin")
	require.NoError(t, err)
	assert.Contains(t, out, config.MsgPasswordStored)
	assert.NotContains(t, out, config.MsgPasswordPrompt)

	pass, err := app.LoadPassword("mario")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pass)
}

func TestLogin_Errors(t *testing.T) {
	keyring.MockInit()

	_, err := execute(t, "x\n", config.CmdLogin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrMissingFlag)

	_, err = execute(t, "", config.CmdLogin, "--user", "mario")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrPasswordRead)
}

func TestServe_InvalidPort(t *testing.T) {
	_, err := execute(t, "", config.CmdServe, "--port", "70000")
	assert.EqualError(t, err, config.ErrPortRange)
}

func TestReadPassword(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"secret\n", "secret"},
		{"secret\r\n", "secret"},
		{"no newline", "no newline"},
	}
	for _, tt := range tests {
		got, err := readPassword(strings.NewReader(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
