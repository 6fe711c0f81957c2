package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ListingRules - word and category lists used to classify marketplace items
type ListingRules struct {
	// MinusWords - title fragments that disqualify an item (regex syntax)
	MinusWords []string `mapstructure:"minus_words"`
	// Keywords - at least one of them must be in the title
	Keywords []string `mapstructure:"keywords"`
	// Conditions - condition words that must not be in the title
	Conditions []string `mapstructure:"conditions"`
	// Categories - allowed category ids
	Categories []string `mapstructure:"categories"`
}

// LoadListingRules reads listing rules from a yaml/json/toml file.
// Every list can be overridden with LISTING_<KEY> env variable (comma separated).
// An empty path yields rules built from the environment only.
func LoadListingRules(path string) (ListingRules, error) {
	v := viper.New()
	v.SetEnvPrefix("listing")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"minus_words", "keywords", "conditions", "categories"} {
		v.SetDefault(key, []string{})
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return ListingRules{}, fmt.Errorf("read listing rules: %w", err)
		}
	}

	var rules ListingRules
	if err := v.Unmarshal(&rules); err != nil {
		return ListingRules{}, fmt.Errorf("unmarshal listing rules: %w", err)
	}
	return rules, nil
}
