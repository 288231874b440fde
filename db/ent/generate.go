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
			Target:  "./gen/ent",
			Package: "github.com/smilematch/quotes/gen/ent",
			Schema:  "github.com/smilematch/quotes/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
