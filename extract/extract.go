package extract

import (
	"encoding/json"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kovetskiy/jax/config"
	"github.com/kovetskiy/jax/schema"
	"github.com/reconquest/karma-go"
	"github.com/reconquest/pkg/log"
	"github.com/reconquest/regexputil-go"
)

// Engine identifies the typesetting library a page was written for.
type Engine string

const (
	EngineMathJax2 Engine = "mathjax2"
	EngineMathJax3 Engine = "mathjax3"
	EngineKaTeX    Engine = "katex"
)

// Extraction is the typesetting configuration recovered from one HTML
// document. Overrides carries every recognized configuration block,
// merged in document order with later blocks winning; Sources records
// where each piece came from.
type Extraction struct {
	Engine    Engine
	Version   string
	Overrides map[string]any
	Sources   []string
}

// Schema maps the detected engine onto the option namespaces it speaks.
func (extraction *Extraction) Schema() schema.Version {
	if extraction.Engine == EngineMathJax2 {
		return schema.Legacy
	}
	return schema.Current
}

// Found reports whether the document carried any engine evidence at
// all, configuration blocks and bare asset URLs alike.
func (extraction *Extraction) Found() bool {
	return len(extraction.Sources) > 0
}

// Resolve validates the extracted overrides on top of the defaults of
// the detected schema version.
func (extraction *Extraction) Resolve() (*config.Configuration, error) {
	return config.Resolve(extraction.Schema(), extraction.Overrides)
}

var (
	reKatexVersion = regexp.MustCompile(
		`(?i)katex@(?P<version>\d+\.\d+\.\d+)`,
	)
	reMathJaxVersion = regexp.MustCompile(
		`(?i)mathjax[@/](?P<version>\d+(?:\.\d+)*)`,
	)
	reConfigParam = regexp.MustCompile(
		`[?&]config=(?P<presets>[^&]+)`,
	)
)

// FromHTML scans an HTML document for typesetting-engine configuration:
// window.MathJax assignments, MathJax.Hub.Config calls,
// renderMathInElement calls and the engine asset URLs themselves.
// Configuration blocks that cannot be decoded are skipped.
func FromHTML(reader io.Reader) (*Extraction, error) {
	document, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, karma.Format(err, "unable to parse html document")
	}

	scan := &scanner{}

	document.Find("script").Each(func(_ int, sel *goquery.Selection) {
		if src, ok := sel.Attr("src"); ok && src != "" {
			scan.scanAssetURL(src)
		}
		scan.scanScript(sel.Text())
	})

	document.Find("link").Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			scan.scanAssetURL(href)
		}
	})

	return &scan.extraction, nil
}

type scanner struct {
	extraction Extraction
	configured bool
}

// scanAssetURL inspects a script src or stylesheet href. Asset URLs
// only hint at the engine, so they never override an engine detected
// from an actual configuration block; the ?config= query parameter of
// the v2 loader is the exception, it names preset files to expand.
func (scan *scanner) scanAssetURL(url string) {
	lower := strings.ToLower(url)

	switch {
	case strings.Contains(lower, "katex"):
		scan.noteEngine(EngineKaTeX, false)

		asset := "asset katex"
		if groups := reKatexVersion.FindStringSubmatch(url); groups != nil {
			version := regexputil.Subexp(reKatexVersion, groups, "version")
			scan.noteVersion(version)
			asset += "@" + version
		}
		scan.addSource(asset)

	case strings.Contains(lower, "mathjax"):
		version := ""
		if groups := reMathJaxVersion.FindStringSubmatch(url); groups != nil {
			version = regexputil.Subexp(reMathJaxVersion, groups, "version")
		}

		if strings.HasPrefix(version, "2") {
			scan.noteEngine(EngineMathJax2, false)
		} else {
			scan.noteEngine(EngineMathJax3, false)
		}

		asset := "asset mathjax"
		if version != "" {
			scan.noteVersion(version)
			asset += "@" + version
		}
		scan.addSource(asset)

		if groups := reConfigParam.FindStringSubmatch(url); groups != nil {
			names := regexputil.Subexp(reConfigParam, groups, "presets")
			for _, name := range strings.Split(names, ",") {
				scan.applyPreset(name)
			}
		}
	}
}

func (scan *scanner) scanScript(text string) {
	if text == "" {
		return
	}

	if anchor := strings.Index(text, "window.MathJax"); anchor >= 0 {
		if object, ok := captureObject(text, anchor); ok {
			values, err := decodeObject(object)
			if err != nil {
				log.Debugf(nil, "skipping window.MathJax block: %s", err)
			} else {
				scan.noteEngine(EngineMathJax3, true)
				scan.mergeOverrides(values)
				scan.addSource("window.MathJax script")
			}
		}
	}

	if anchor := strings.Index(text, "MathJax.Hub.Config"); anchor >= 0 {
		if object, ok := captureObject(text, anchor); ok {
			values, err := decodeObject(object)
			if err != nil {
				log.Debugf(nil, "skipping MathJax.Hub.Config block: %s", err)
			} else {
				scan.noteEngine(EngineMathJax2, true)
				scan.mergeOverrides(values)
				scan.addSource("MathJax.Hub.Config script")
			}
		}
	}

	if strings.Contains(text, "renderMathInElement") {
		scan.noteEngine(EngineKaTeX, true)
		scan.mergeOverrides(katexOverrides(text))
		scan.addSource("renderMathInElement script")
	}
}

func (scan *scanner) applyPreset(name string) {
	scan.noteEngine(EngineMathJax2, true)
	scan.addSource("config=" + name)

	preset, ok := presets[name]
	if !ok {
		log.Debugf(nil, "unknown configuration preset: %s", name)
		return
	}

	scan.mergeOverrides(preset())
}

// noteEngine records engine evidence. Configuration blocks are strong
// evidence and follow document order; bare asset URLs only fill the
// gap when no block named an engine.
func (scan *scanner) noteEngine(engine Engine, strong bool) {
	if strong {
		scan.extraction.Engine = engine
		scan.configured = true
		return
	}

	if !scan.configured && scan.extraction.Engine == "" {
		scan.extraction.Engine = engine
	}
}

func (scan *scanner) noteVersion(version string) {
	if scan.extraction.Version == "" {
		scan.extraction.Version = version
	}
}

func (scan *scanner) mergeOverrides(values map[string]any) {
	scan.extraction.Overrides = config.Merge(scan.extraction.Overrides, values)
}

func (scan *scanner) addSource(source string) {
	scan.extraction.Sources = append(scan.extraction.Sources, source)
}

func decodeObject(object string) (map[string]any, error) {
	var values map[string]any
	err := json.Unmarshal([]byte(jsonify(object)), &values)
	if err != nil {
		return nil, karma.Format(err, "unable to decode configuration object")
	}

	return values, nil
}

// captureObject returns the first balanced brace-delimited object after
// the given offset. String literals and comments are skipped, so braces
// inside them do not unbalance the capture.
func captureObject(text string, from int) (string, bool) {
	depth := 0
	start := -1

	index := from
	for index < len(text) {
		char := text[index]

		switch {
		case char == '\'' || char == '"':
			_, index = readString(text, index)
			continue

		case strings.HasPrefix(text[index:], "//"):
			offset := strings.IndexByte(text[index:], '\n')
			if offset < 0 {
				return "", false
			}
			index += offset
			continue

		case strings.HasPrefix(text[index:], "/*"):
			offset := strings.Index(text[index+2:], "*/")
			if offset < 0 {
				return "", false
			}
			index += offset + 4
			continue

		case char == '{':
			if depth == 0 {
				start = index
			}
			depth++

		case char == '}':
			depth--
			if depth == 0 && start >= 0 {
				return text[start : index+1], true
			}
		}

		index++
	}

	return "", false
}
