package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"gitlab.com/tech-pubs/simplified-english/lib"
	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
	"gitlab.com/tech-pubs/simplified-english/lib/morph"
	"gitlab.com/tech-pubs/simplified-english/lib/store"
	"gitlab.com/tech-pubs/simplified-english/lib/store/remote"
	"gitlab.com/tech-pubs/simplified-english/lib/vocabulary"
)

// config structure
type lexiconImporterConfig struct {
	lib.BaseConfig
	Raw struct {
		Approved  string
		Forbidden string
		Allowed   string
	}
	SourcePdf string `mapstructure:"source_pdf"`
	Overrides string
	Output    struct {
		Backend string
		Dir     string
	}
	Redis   remote.RedisConfig
	Rebuild bool
}

var config lexiconImporterConfig

func initConfig() {
	pflag.Bool("rebuild", false, "drop the existing lists from the store before importing")

	err := lib.InitializeConfig("./config/lexicon-importer.yml", map[string]interface{}{
		"log_level": "info",
		"raw": map[string]interface{}{
			"approved":  "./lexicon/raw/approved.tsv",
			"forbidden": "./lexicon/raw/forbidden.txt",
			"allowed":   "./lexicon/raw/allowed.txt",
		},
		"source_pdf": "",
		"overrides":  "./config/overrides.yml",
		"output": map[string]interface{}{
			"backend": "files",
			"dir":     "./lexicon",
		},
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
	}, &config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

// Expands the raw word lists into the derived ones the linting processes
// load: every approved inflection spelled out, forbidden and allowed words
// normalized and deduplicated.
func main() {
	initConfig()

	lists, err := collectRawLists()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	if len(lists.Approved) == 0 || len(lists.Forbidden) == 0 {
		log.Fatal().Msg("no raw word lists found, configure raw list files or a source pdf")
	}

	overrides, err := morph.LoadOverrides(config.Overrides)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	derived := vocabulary.Derive(lists, morph.New(overrides))

	switch config.Output.Backend {
	case "files":
		err = lexicon.WriteDir(config.Output.Dir, derived)
	case "redis":
		err = writeStore(remote.NewRedisClient(config.Redis), derived)
	default:
		log.Fatal().Msg("invalid output backend type")
	}
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	log.Info().
		Int("approved", len(derived.Approved)).
		Int("forbidden", len(derived.Forbidden)).
		Int("allowed", len(derived.Allowed)).
		Str("backend", config.Output.Backend).
		Msg("lexicon import complete")
}

// collectRawLists merges the structured raw lists with whatever a source
// document scan yields. Missing raw files are tolerated so a fresh checkout
// can bootstrap everything from the pdf alone.
func collectRawLists() (lexicon.Lists, error) {
	var lists lexicon.Lists

	approved, err := readTaggedFile(config.Raw.Approved)
	if err != nil && !os.IsNotExist(err) {
		return lexicon.Lists{}, err
	}
	if os.IsNotExist(err) {
		log.Warn().Str("path", config.Raw.Approved).Msg("raw approved list not found, skipping")
	}
	lists.Approved = approved

	for _, item := range []struct {
		path string
		dest *[]string
	}{
		{config.Raw.Forbidden, &lists.Forbidden},
		{config.Raw.Allowed, &lists.Allowed},
	} {
		words, err := readListFile(item.path)
		if err != nil && !os.IsNotExist(err) {
			return lexicon.Lists{}, err
		}
		if os.IsNotExist(err) {
			log.Warn().Str("path", item.path).Msg("raw list not found, skipping")
		}
		*item.dest = words
	}

	if config.SourcePdf != "" {
		text, err := extractText(config.SourcePdf)
		if err != nil {
			return lexicon.Lists{}, err
		}
		approved, forbidden := parseDictionary(text)
		lists.Approved = append(lists.Approved, approved...)
		lists.Forbidden = append(lists.Forbidden, forbidden...)
		lists.Allowed = append(lists.Allowed, allCapsSweep(text)...)
		log.Info().
			Int("approved", len(approved)).
			Int("forbidden", len(forbidden)).
			Msg("parsed dictionary tables from source pdf")
	}

	return lists, nil
}

func readTaggedFile(path string) ([]lexicon.TaggedWord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return lexicon.ReadTagged(file)
}

func readListFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return lexicon.ReadList(file)
}

func writeStore(client store.Client, derived lexicon.DerivedLists) error {
	for !client.Ready() {
		log.Info().Msg("store is not ready, waiting...")
		time.Sleep(10 * time.Second)
	}
	if config.Rebuild {
		if err := store.DropAll(client); err != nil {
			return err
		}
	}
	return store.SaveDerived(client, derived)
}
