package main

import (
	"github.com/rogerio-castellano/vigilio-gateway/internal/config"
	"github.com/rogerio-castellano/vigilio-gateway/internal/vigilio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	v          *viper.Viper
	cfg        config.Config
)

func Execute() error {
	v = config.New()

	root := &cobra.Command{
		Use:           "vigilio-gateway",
		Short:         "REST gateway for the Vigilio gRPC service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(v, configFile)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default ./vigilio.yaml or /etc/vigilio/vigilio.yaml)")
	root.PersistentFlags().String("grpc-host", "", "upstream address host:port (env VIGILIO_GRPC_HOST)")
	root.PersistentFlags().Bool("grpc-secure", false, "use TLS towards the upstream (env VIGILIO_GRPC_SECURE)")
	root.PersistentFlags().String("grpc-credentials", "", "CA certificate for TLS (env VIGILIO_GRPC_CREDENTIALS_PATH)")
	_ = v.BindPFlag("grpc_host", root.PersistentFlags().Lookup("grpc-host"))
	_ = v.BindPFlag("grpc_secure", root.PersistentFlags().Lookup("grpc-secure"))
	_ = v.BindPFlag("grpc_credentials_path", root.PersistentFlags().Lookup("grpc-credentials"))

	serve := serveCmd()
	root.AddCommand(serve, pingCmd(), exportCmd())
	root.RunE = serve.RunE
	root.Flags().AddFlagSet(serve.Flags())
	return root.Execute()
}

func dialUpstream() (*vigilio.Client, error) {
	return vigilio.Dial(cfg.Dial())
}
