package lib

import (
	"os"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

type config struct {
	LexiconDir string `mapstructure:"lexicon_dir"`
	Rules      struct {
		MaxSentenceWords int `mapstructure:"max_sentence_words"`
	}
	KeyNotInConfigMap string `mapstructure:"key_not_in_config_map"`
}

var (
	lexiconDirValue = "./lexicon"
	maxWordsValue   = 25
	configFileName  string
)

func TestMain(m *testing.M) {
	configMap := map[string]interface{}{
		"lexicon_dir": lexiconDirValue,
		"rules": map[string]interface{}{
			"max_sentence_words": maxWordsValue,
		},
	}

	filename, err := createConfigFile(configMap, ".", "*.yml")
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Remove(filename)
	os.Exit(code)
}

func TestInitializeConfigFromPath(t *testing.T) {
	resetFlags()

	var parsedConfig config
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, lexiconDirValue, parsedConfig.LexiconDir)
	assert.Equal(t, maxWordsValue, parsedConfig.Rules.MaxSentenceWords)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	resetFlags()

	overrideValue := "/srv/lexicon"
	os.Setenv("LEXICON_DIR", overrideValue)
	os.Setenv("RULES_MAX_SENTENCE_WORDS", "15")
	os.Setenv("KEY_NOT_IN_CONFIG_MAP", overrideValue)

	var parsedConfig config
	err := InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.LexiconDir)
	assert.Equal(t, 15, parsedConfig.Rules.MaxSentenceWords)

	// If an env var does not exist in the config map, viper will not parse it
	assert.Equal(t, "", parsedConfig.KeyNotInConfigMap)

	os.Unsetenv("LEXICON_DIR")
	os.Unsetenv("RULES_MAX_SENTENCE_WORDS")
	os.Unsetenv("KEY_NOT_IN_CONFIG_MAP")
}

func TestInitializeConfigEmptyPath(t *testing.T) {
	resetFlags()

	overrideValue := "/var/lib/lexicon"
	os.Setenv("LEXICON_DIR", overrideValue)

	var parsedConfig config
	err := InitializeConfig("", map[string]interface{}{}, &parsedConfig)
	assert.NoError(t, err)

	// when config path is empty, viper will listen to env vars
	assert.Equal(t, overrideValue, parsedConfig.LexiconDir)

	os.Unsetenv("LEXICON_DIR")
}

func TestInitializeConfigWithFlag(t *testing.T) {
	resetFlags()

	overrideConfigPath := "*.yml"
	pflag.Set(configFlag, overrideConfigPath)
	overrideValue := "./lexicon-overridden"
	overrideConfigMap := map[string]interface{}{
		"lexicon_dir": overrideValue,
	}

	filename, err := createConfigFile(overrideConfigMap, ".", overrideConfigPath)
	if err != nil {
		panic(err)
	}

	var parsedConfig config
	err = InitializeConfig(configFileName, map[string]interface{}{}, &parsedConfig)

	assert.NoError(t, err)
	assert.Equal(t, overrideValue, parsedConfig.LexiconDir)

	os.Remove(filename)
}

func createConfigFile(configMap map[string]interface{}, path, name string) (fileName string, err error) {
	file, err := os.CreateTemp(path, name)
	if err != nil {
		return "", err
	}
	configFileName = file.Name()

	data, err := yaml.Marshal(&configMap)
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile(configFileName, data, 0o644); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
}
