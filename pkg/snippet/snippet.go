package snippet

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"text/template"

	// Packages
	"github.com/mutablelogic/go-scribe/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Program is everything a snippet needs, independent of the language it is
// rendered in
type Program struct {
	APIKey   string // Embedded verbatim
	Params   string // Request JSON
	Remote   bool   // False when the audio was uploaded
	Summary  bool   // Print the summary
	Endpoint string // LeMUR endpoint, for summary programs
	kind     string
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TypeScript = "typescript"
	Python     = "python"
	Go         = "go"
)

const (
	// Default is the language returned as the primary snippet
	Default = TypeScript

	// LocalAudio replaces the path of an uploaded file
	LocalAudio = "replace_with_your_actual_audio_system_path"
)

const (
	kindTranscript = "transcript"
	kindLemur      = "lemur"
)

var (
	ErrUnknownLanguage = errors.New("unknown snippet language")
)

var (
	Languages = []string{TypeScript, Python, Go}
)

//go:embed templates/*.tmpl
var tmplfs embed.FS

var templates = template.Must(template.New("snippet").Funcs(template.FuncMap{
	"quote":    quote,
	"goquote":  strconv.Quote,
	"gostring": gostring,
}).ParseFS(tmplfs, "templates/*.tmpl"))

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewProgram returns the program for a transcription request. When the
// audio is not remote, it is replaced with a placeholder, so the path of the
// staged upload never appears in a snippet.
func NewProgram(req *schema.ProviderRequest, apikey string, remote bool) (*Program, error) {
	req = req.Copy()
	if !remote {
		req.Audio = LocalAudio
	}
	params, err := marshal(req)
	if err != nil {
		return nil, err
	}
	return &Program{
		APIKey:  apikey,
		Params:  params,
		Remote:  remote,
		Summary: req.HasSummary(),
		kind:    kindTranscript,
	}, nil
}

// NewSummaryProgram returns the program for a LeMUR request
func NewSummaryProgram(req *schema.LemurRequest, apikey string) (*Program, error) {
	params, err := marshal(req)
	if err != nil {
		return nil, err
	}
	return &Program{
		APIKey:   apikey,
		Params:   params,
		Remote:   true,
		Endpoint: req.Endpoint(),
		kind:     kindLemur,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Render returns the program as source code in a language
func (p *Program) Render(lang string) (string, error) {
	if !slices.Contains(Languages, lang) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, p.kind+"."+lang+".tmpl", p); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderAll returns the program in every supported language
func (p *Program) RenderAll() (map[string]string, error) {
	result := make(map[string]string, len(Languages))
	for _, lang := range Languages {
		if src, err := p.Render(lang); err != nil {
			return nil, err
		} else {
			result[lang] = src
		}
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// marshal returns indented JSON without HTML escaping or a trailing newline
func marshal(v any) (string, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// quote returns a double-quoted string literal valid in TypeScript and Python
func quote(s string) (string, error) {
	data, err := json.Marshal(s)
	return string(data), err
}

// gostring returns a raw string literal, or an interpreted one when the value
// contains a backtick
func gostring(s string) string {
	if strings.Contains(s, "`") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}
