package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zk-langdef/internal/app"
)

// sourceOptions are the descriptor selection flags shared by every
// command that loads definitions.
type sourceOptions struct {
	SystemConfig   string
	Classpath      []string
	Languages      []string
	Addons         []string
	ZKVersion      string
	NoVersionCheck bool
}

func addSourceFlags(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringVar(&opts.SystemConfig, "system-config", "", "System config YAML (zk version, classpath, addons)")
	cmd.Flags().StringSliceVar(&opts.Classpath, "classpath", nil, "Classpath roots (directories or jar archives), in order")
	cmd.Flags().StringSliceVar(&opts.Languages, "lang", nil, "Extra lang.xml files")
	cmd.Flags().StringSliceVar(&opts.Addons, "addon", nil, "Extra lang-addon.xml files")
	cmd.Flags().StringVar(&opts.ZKVersion, "zk-version", "", "ZK runtime version used for addon version checks")
	cmd.Flags().BoolVar(&opts.NoVersionCheck, "no-version-check", false, "Load addons regardless of their zk-version")

	_ = viper.BindPFlag("system_config", cmd.Flags().Lookup("system-config"))
	_ = viper.BindPFlag("classpath", cmd.Flags().Lookup("classpath"))
	_ = viper.BindPFlag("languages", cmd.Flags().Lookup("lang"))
	_ = viper.BindPFlag("addons", cmd.Flags().Lookup("addon"))
	_ = viper.BindPFlag("zk_version", cmd.Flags().Lookup("zk-version"))
	_ = viper.BindPFlag("no_version_check", cmd.Flags().Lookup("no-version-check"))
}

func (o sourceOptions) resolve(cmd *cobra.Command) app.Sources {
	return app.Sources{
		ConfigPath:     resolveString(cmd, o.SystemConfig, "system_config", "system-config"),
		Classpath:      resolveStrings(cmd, o.Classpath, "classpath", "classpath"),
		Languages:      resolveStrings(cmd, o.Languages, "languages", "lang"),
		Addons:         resolveStrings(cmd, o.Addons, "addons", "addon"),
		ZKVersion:      resolveString(cmd, o.ZKVersion, "zk_version", "zk-version"),
		NoVersionCheck: resolveBool(cmd, o.NoVersionCheck, "no_version_check", "no-version-check"),
	}
}
