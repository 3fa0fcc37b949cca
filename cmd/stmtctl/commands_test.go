package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtures = "../../internal/parser/testdata"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDetect(t *testing.T) {
	out, err := run(t, "detect", filepath.Join(fixtures, "paypal.csv"))

	require.NoError(t, err)
	assert.Contains(t, out, "format:   paypal")
	assert.Contains(t, out, "encoding: utf-8")
	assert.Contains(t, out, "kind:     payment_processor")
}

func TestDetect_Unknown(t *testing.T) {
	path := writeTemp(t, "unknown.csv", "foo,bar\n1,2\n")

	_, err := run(t, "detect", path)

	require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "supported: vr_bank, bilderlings, kingdom_bank, amex, soldo, sumup, paypal, relio, qonto")
}

func TestDetect_MissingFile(t *testing.T) {
	_, err := run(t, "detect", filepath.Join(t.TempDir(), "missing.csv"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_JSON(t *testing.T) {
	out, err := run(t, "parse", filepath.Join(fixtures, "paypal.csv"))
	require.NoError(t, err)

	var res struct {
		Header struct {
			Format string `json:"format"`
		} `json:"header"`
		Positions []struct {
			Text string `json:"text"`
		} `json:"positions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "paypal", res.Header.Format)
	require.Len(t, res.Positions, 3)
	assert.Equal(t, "Max Muster (Payment Received)", res.Positions[0].Text)
}

func TestParse_Summary(t *testing.T) {
	out, err := run(t, "parse", "--summary", filepath.Join(fixtures, "paypal.csv"))

	require.NoError(t, err)
	assert.Contains(t, out, "rows:    3")
	assert.Contains(t, out, "valid:   3")
	assert.Contains(t, out, "invalid: 0")
}

func TestParse_ExplicitFormatRejectsFile(t *testing.T) {
	_, err := run(t, "parse", "--format", "paypal", filepath.Join(fixtures, "amex.csv"))

	assert.ErrorIs(t, err, domain.ErrInvalidFile)
}

func TestParse_UnknownFormatFlag(t *testing.T) {
	_, err := run(t, "parse", "--format", "mt940", filepath.Join(fixtures, "paypal.csv"))

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

const batch = `"EXTF";510;"Buchungsstapel";16;1;01032024;;"RE";"tests";;29098;55003;20240101;4;01012024;31122024
Umsatz (ohne Soll/Haben-Kz);Soll/Haben-Kennzeichen;WKZ Umsatz;Kurs;Basis-Umsatz;WKZ Basis-Umsatz;Konto;Gegenkonto (ohne BU-Schlüssel);BU-Schlüssel;Belegdatum;Belegfeld 1;Belegfeld 2;Skonto;Buchungstext
119,00;S;EUR;;;;8400;10001;;0302;RE-1;;;Consulting
`

func TestDatevParse(t *testing.T) {
	path := writeTemp(t, "EXTF.csv", batch)

	out, err := run(t, "datev", "parse", path)
	require.NoError(t, err)

	var res struct {
		Header struct {
			ClientNumber string `json:"client_number"`
		} `json:"header"`
		Records []struct {
			DocumentNumber string `json:"document_number"`
		} `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res.Records, 1)
	assert.Equal(t, "RE-1", res.Records[0].DocumentNumber)
}

func TestDatevParse_NotDatev(t *testing.T) {
	_, err := run(t, "datev", "parse", filepath.Join(fixtures, "paypal.csv"))

	assert.ErrorIs(t, err, domain.ErrInvalidDatevFile)
}

func TestDatevCheck(t *testing.T) {
	out, err := run(t, "datev", "check", writeTemp(t, "EXTF.csv", batch))
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "datev", "check", filepath.Join(fixtures, "paypal.csv"))
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestCommandsRequireOneFile(t *testing.T) {
	for _, args := range [][]string{{"detect"}, {"parse", "a", "b"}, {"datev", "check"}} {
		_, err := run(t, args...)
		assert.Error(t, err, "%v", args)
	}
}
