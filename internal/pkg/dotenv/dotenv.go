package dotenv

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Load подгружает .env. Уже выставленные переменные окружения не перезаписываются.
func Load(files ...string) error {
	return godotenv.Load(files...)
}

// ApplyCommandLine применяет флаги процесса поверх окружения.
func ApplyCommandLine() error {
	return ApplyFlags(pflag.CommandLine, os.Args[1:])
}

// ApplyFlags переопределяет переменные окружения значениями флагов,
// флаги имеют приоритет над .env и окружением.
func ApplyFlags(fs *pflag.FlagSet, args []string) error {
	var (
		portFlag     string
		timezoneFlag string
	)
	fs.StringVarP(&portFlag, "port", "p", "", "Server port (overrides PORT environment variable)")
	fs.StringVar(&timezoneFlag, "timezone", "", "Pickup rules timezone (overrides PICKUP_TIMEZONE environment variable)")

	err := fs.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	overrides := map[string]string{
		"PORT":            portFlag,
		"PICKUP_TIMEZONE": timezoneFlag,
	}
	for env, val := range overrides {
		if val == "" {
			continue
		}
		err := os.Setenv(env, val)
		if err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", env, err)
		}
	}
	return nil
}
