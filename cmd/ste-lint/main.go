package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"gitlab.com/tech-pubs/simplified-english/lib"
	"gitlab.com/tech-pubs/simplified-english/lib/document"
	dochtml "gitlab.com/tech-pubs/simplified-english/lib/document/html"
	doctext "gitlab.com/tech-pubs/simplified-english/lib/document/text"
	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
	"gitlab.com/tech-pubs/simplified-english/lib/lint"
	"gitlab.com/tech-pubs/simplified-english/lib/morph"
	"gitlab.com/tech-pubs/simplified-english/lib/report"
	"gitlab.com/tech-pubs/simplified-english/lib/store"
	"gitlab.com/tech-pubs/simplified-english/lib/store/remote"
	"gitlab.com/tech-pubs/simplified-english/lib/vocabulary"
)

// config structure
type steLintConfig struct {
	lib.BaseConfig
	Text    string
	File    string
	Format  string
	Out     string
	Lexicon struct {
		Backend string
		Dir     string
	}
	Redis     remote.RedisConfig
	Overrides string
	Allowlist string
	Rules     lint.Config
}

var config steLintConfig

func initConfig() {
	pflag.String("text", "", "lint this text instead of a file")
	pflag.String("file", "", "lint this file, .html and .htm are parsed as html")
	pflag.String("format", "", "report format: text, json or csv")
	pflag.String("out", "", "write the report to this file instead of stdout")

	err := lib.InitializeConfig("./config/ste-lint.yml", map[string]interface{}{
		"log_level": "info",
		"format":    "text",
		"lexicon": map[string]interface{}{
			"backend": "files",
			"dir":     "./lexicon",
		},
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
		"overrides": "./config/overrides.yml",
		"allowlist": "./config/allowlist.yml",
		"rules": map[string]interface{}{
			"max_sentence_words":  20,
			"intervening_adverbs": 1,
			"workers":             1,
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

// Lints one document and writes the report. The exit code reflects only
// operational failures, a document full of findings still exits 0 so that
// pipelines can consume the report itself.
func main() {
	initConfig()

	vocab, overrides, err := loadVocabulary()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	linter, err := lint.New(vocab, overrides, config.Rules)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	doc, err := readInput()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	rep := report.Build(linter.LintText(doc))

	renderer, err := report.NewRenderer(config.Format)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	data, err := renderer.Render(rep)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	if config.Out != "" {
		if err := os.WriteFile(config.Out, data, 0644); err != nil {
			log.Fatal().Err(err).Send()
		}
		return
	}
	if _, err := os.Stdout.Write(data); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// readInput returns the document text from the first configured source:
// --text wins over --file, stdin is the fallback.
func readInput() (string, error) {
	if config.Text != "" {
		return config.Text, nil
	}
	if config.File != "" {
		f, err := os.Open(config.File)
		if err != nil {
			return "", err
		}
		return document.ReadAll(readerFor(config.File), f)
	}
	return document.ReadAll(doctext.BlockReader{}, os.Stdin)
}

func readerFor(path string) document.Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return dochtml.BlockReader{}
	default:
		return doctext.BlockReader{}
	}
}

func loadVocabulary() (*vocabulary.Vocabulary, *morph.Overrides, error) {
	overrides, err := morph.LoadOverrides(config.Overrides)
	if err != nil {
		return nil, nil, err
	}
	allow, err := vocabulary.LoadAllowlist(config.Allowlist)
	if err != nil {
		return nil, nil, err
	}

	var derived lexicon.DerivedLists
	switch config.Lexicon.Backend {
	case "files":
		if derived, err = lexicon.LoadDir(config.Lexicon.Dir); err != nil {
			return nil, nil, err
		}
	case "redis":
		if derived, err = store.LoadDerived(remote.NewRedisClient(config.Redis)); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, lib.NewConfigError("invalid lexicon backend %q, must be files or redis", config.Lexicon.Backend)
	}

	vocab, err := vocabulary.FromDerived(derived, allow)
	if err != nil {
		return nil, nil, err
	}
	return vocab, overrides, nil
}
