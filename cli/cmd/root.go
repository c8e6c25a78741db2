/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	pb "github.com/ponyo877/karaokesh/grpc"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

var (
	cfgFile           string
	grpcServerAddress string
	karaokeClient     pb.KaraokeServiceClient
	grpcConn          *grpc.ClientConn
)

const (
	grpcServerAddressKey = "grpc_server_address"
	sessionIDKey         = "session_id"
	hostcodeKey          = "hostcode"
	deviceIDKey          = "device_id"
	displayNameKey       = "display_name"
	clientIDKey          = "client_id"
)

var errNotConnected = errors.New("not connected to a session, run 'connect <hostcode>' first")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "karaokesh",
	Short: "Joins karaoke sessions and manages their playback queue",
	Long: `karaokesh talks to a karaokesh server over gRPC.

Connect to a venue with its hostcode, register this terminal as a device,
submit videos to the shared queue and drive playback. Run without
arguments to enter interactive mode.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		conn, err := grpc.NewClient(grpcServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("did not connect to gRPC server: %w", err)
		}
		grpcConn = conn
		karaokeClient = pb.NewKaraokeServiceClient(conn)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if grpcConn != nil {
			return grpcConn.Close()
		}
		return nil
	},
}

// Execute runs a single command when arguments are given and the
// interactive prompt otherwise. This is called by main.main().
func Execute() {
	if len(os.Args) > 1 {
		if err := rootCmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}
	runREPL()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.karaokesh.yaml)")
	rootCmd.PersistentFlags().String("grpc-server", "localhost:50051", "Address of the karaokesh gRPC server")
	rootCmd.PersistentFlags().String("name", "", "Display name used for devices and submissions")

	viper.BindPFlag(grpcServerAddressKey, rootCmd.PersistentFlags().Lookup("grpc-server"))
	viper.BindPFlag(displayNameKey, rootCmd.PersistentFlags().Lookup("name"))
	viper.SetDefault(grpcServerAddressKey, "localhost:50051")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".karaokesh" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".karaokesh")
	}

	viper.SetEnvPrefix("karaokesh")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}

	grpcServerAddress = viper.GetString(grpcServerAddressKey)
}

// saveState persists the session and device the CLI is attached to.
func saveState() {
	saveStateTo(viper.GetViper())
}

func saveStateTo(v *viper.Viper) {
	if err := v.WriteConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error writing config file:", err)
			return
		}
		if err := v.SafeWriteConfig(); err != nil {
			fmt.Fprintln(os.Stderr, "Error creating config file:", err)
		}
	}
}

// clientID returns the id of this install, creating and saving it on first use.
func clientID(v *viper.Viper) string {
	if id := v.GetString(clientIDKey); id != "" {
		return id
	}
	id := ulid.Make().String()
	v.Set(clientIDKey, id)
	saveStateTo(v)
	return id
}

// userAgent identifies this install to the server, which folds repeat
// registrations from the same user agent into one device.
func userAgent(v *viper.Viper) string {
	return fmt.Sprintf("karaokesh-cli/%s (%s/%s)", clientID(v), runtime.GOOS, runtime.GOARCH)
}

func currentSessionID() (string, error) {
	id := viper.GetString(sessionIDKey)
	if id == "" {
		return "", errNotConnected
	}
	return id, nil
}

// forgetSession clears the stored session and device.
func forgetSession() {
	viper.Set(sessionIDKey, "")
	viper.Set(hostcodeKey, "")
	viper.Set(deviceIDKey, "")
	saveState()
}

func printRPCError(op string, err error) {
	st := status.Convert(err)
	fmt.Fprintf(os.Stderr, "Error calling %s: %s (%s)\n", op, st.Message(), st.Code())
}
