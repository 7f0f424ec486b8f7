package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"winkits/internal/app"
)

type resolveOptions struct {
	Type      string
	Versioned bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the directory for an SDK category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Type, "type", "", "Directory type: binaries, headers, or libraries")
	cmd.Flags().BoolVar(&opts.Versioned, "versioned", false, "Resolve the version-specific subdirectory")
	_ = viper.BindPFlag("type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("versioned", cmd.Flags().Lookup("versioned"))
	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(app.ResolveRequest{
		Type:      resolveString(cmd, opts.Type, "type", "type"),
		Versioned: resolveBool(cmd, opts.Versioned, "versioned", "versioned"),
		KitsRoot:  viper.GetString("kits_root"),
	})
	if err != nil {
		return err
	}
	log.Debug().Str("kits_root", result.KitsRoot).Str("type", string(result.Type)).Msg("resolved")
	fmt.Println(result.Dir)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
