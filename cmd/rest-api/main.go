package main

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"gitlab.com/tech-pubs/simplified-english/lib"
	"gitlab.com/tech-pubs/simplified-english/lib/lexicon"
	"gitlab.com/tech-pubs/simplified-english/lib/lint"
	"gitlab.com/tech-pubs/simplified-english/lib/morph"
	"gitlab.com/tech-pubs/simplified-english/lib/store"
	"gitlab.com/tech-pubs/simplified-english/lib/store/remote"
	"gitlab.com/tech-pubs/simplified-english/lib/vocabulary"
)

// config structure
type restAPIConfig struct {
	lib.BaseConfig
	Server struct {
		HttpPort int `mapstructure:"http_port"`
	}
	Lexicon struct {
		Backend string
		Dir     string
	}
	Redis     remote.RedisConfig
	Overrides string
	Allowlist string
	Rules     lint.Config
}

var config restAPIConfig

func initConfig() {
	err := lib.InitializeConfig("./config/rest-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port": 8080,
		},
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
	log.Info().
		Str("backend", config.Lexicon.Backend).
		Int("approved", vocab.Stats().Approved).
		Int("forbidden", vocab.Stats().Forbidden).
		Msg("vocabulary loaded")

	r := gin.New()
	r.Use(gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery())
	r.Use(cors.Default())

	s := server{controller: controller{
		vocab:     vocab,
		overrides: overrides,
		linter:    linter,
		rules:     config.Rules,
	}}
	s.RegisterRoutes(r)

	if err := r.Run(fmt.Sprintf(":%d", config.Server.HttpPort)); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// loadVocabulary builds the vocabulary from the configured backend: derived
// list files on disk, or the lists a lexicon-importer run left in redis.
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
