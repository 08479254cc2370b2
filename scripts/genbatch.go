// Use: go run scripts/genbatch.go <persons> > batch.yaml && graphkb write --file batch.yaml
//
// Writes a batch defining a small social schema, inserting the given number
// of persons and marrying them in pairs.

package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"sigs.k8s.io/yaml"
)

type (
	object = map[string]any
	list   = []any
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <persons>", os.Args[0])
	}
	persons, err := strconv.Atoi(os.Args[1])
	if err != nil || persons < 0 {
		log.Fatalf("invalid number of persons %q", os.Args[1])
	}

	queries := list{
		object{"define": list{
			object{"label": "name", "sub": "attribute", "datatype": "string"},
			object{"label": "age", "sub": "attribute", "datatype": "long"},
			object{"label": "person", "sub": "entity", "owns": list{"name", "age"}, "plays": list{"spouse"}},
			object{"label": "marriage", "sub": "relation", "relates": list{"spouse"}},
		}},
	}

	// One insert per couple keeps every query small.
	for i := 0; i < persons; i += 2 {
		statements := list{person("a", i)}
		if i+1 < persons {
			statements = append(statements,
				person("b", i+1),
				object{"var": "m", "isa": "marriage", "players": list{
					object{"role": "spouse", "player": "$a"},
					object{"role": "spouse", "player": "$b"},
				}},
			)
		}
		queries = append(queries, object{"insert": object{"statements": statements}})
	}

	out, err := yaml.Marshal(object{"queries": queries})
	if err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal(err)
	}
}

func person(v string, i int) object {
	return object{
		"var": v,
		"isa": "person",
		"has": list{
			object{"type": "name", "value": fmt.Sprintf("person-%d", i)},
			object{"type": "age", "value": 18 + i%60},
		},
	}
}
