package main

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// dotenvLoader is a kong.ConfigurationLoader that resolves flags from the
// variables of a .env file, matched by each flag's env tag.
func dotenvLoader(r io.Reader) (kong.Resolver, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, err
	}
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, name := range flag.Envs {
			if value, ok := values[name]; ok {
				return value, nil
			}
		}
		return nil, nil
	}), nil
}
