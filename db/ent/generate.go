// Command generate runs entc over db/ent/schema and writes the client
// into gen/ent. Run from the repository root.
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/mattin-ai/mattin/gen/ent",
			Schema:  "github.com/mattin-ai/mattin/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}