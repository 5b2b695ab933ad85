package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "rndf",
	Short: "RNDF road network inspector",
	Long:  "rndf parses Road Network Definition Format files and reports on their segments, lanes, zones, and waypoints.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("RNDF")
	viper.AutomaticEnv()
}
