package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"

	"github.com/axiomesh/axiom-token/pkg/repo"
)

var (
	// populated at build time via -ldflags
	CurrentVersion = "dev"
	BuildDate      = "unknown"
)

func main() {
	loadEnvFile()

	app := cli.NewApp()
	app.Name = repo.AppName
	app.Usage = "A native-token ledger with ERC-20 semantics over a journaled state store"
	app.Compiled = time.Now()

	// global flags
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "repo",
			Usage: "Work path",
		},
	}

	app.Commands = []*cli.Command{
		configCMD,
		tokenCMD,
		{
			Name:    "version",
			Aliases: []string{"v"},
			Usage:   "Show code version",
			Action: func(ctx *cli.Context) error {
				fmt.Printf("%s version %s (built %s)\n", repo.AppName, CurrentVersion, BuildDate)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadEnvFile() {
	envFile := os.Getenv("AXIOM_TOKEN_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if fileExist(envFile) {
		if err := godotenv.Load(envFile); err != nil {
			fmt.Printf("load env file %s failed: %s\n", envFile, err)
			return
		}
	}
}

func fileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func getRootPath(ctx *cli.Context) (string, error) {
	p := ctx.String("repo")
	return repo.LoadRepoRootFromEnv(p)
}
