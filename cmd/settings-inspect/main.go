package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"solibot/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
}

// Prints every stored guild setting. Opens the database read-only, so it can
// run next to the bot.
func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatalf("Config error: %v", err)
	}
	defaultPath := config.BadgerFilepath
	if defaultPath == "" {
		defaultPath = database.DefaultPath
	}
	dbPath := flag.String("db", defaultPath, "Path to badger DB")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Guild", "Confinement channel", "Log channel", "Setup", "Updated at"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(repositories.SettingsPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				settings, updatedAt, err := repositories.DecodeSettings(item.Key(), v)
				if err != nil {
					fmt.Printf("Skipping %s: %v\n", item.Key(), err)
					return nil
				}
				at := "-"
				if !updatedAt.IsZero() {
					at = updatedAt.Format("2006-01-02 15:04:05")
				}
				table.Append([]string{
					string(settings.Guild),
					orDash(string(settings.ConfinementChannel)),
					orDash(string(settings.LogChannel)),
					fmt.Sprint(settings.SetupComplete),
					at,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
