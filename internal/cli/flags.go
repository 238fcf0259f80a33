package cli

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// addPageDataFlag registers the page-data flag on commands that execute
// the demo template, bound to the command's own config key so render and
// bench can be configured independently.
func addPageDataFlag(flags *pflag.FlagSet, key string) {
	flags.StringP("data", "d", "", "YAML page data file")
	viper.BindPFlag(key, flags.Lookup("data"))
}
