// Command hash-generator prints bcrypt hashes for passwords given as
// arguments, for seeding users directly in the database.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/jobboard-api/internal/service/auth"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("hash-generator", flag.ContinueOnError)
	cost := fs.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errors.New("usage: hash-generator [-cost n] password...")
	}

	hasher := auth.NewBcryptHasher(*cost)
	for _, password := range fs.Args() {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash %q: %w", password, err)
		}
		if _, err := fmt.Fprintf(out, "Password: %s\nHash: %s\n\n", password, hash); err != nil {
			return err
		}
	}
	return nil
}
