// Copyright 2026 The mmark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates entitytable.go from the WHATWG HTML5 entity list.
// Run it with: go run entitygen.go >entitytable.go
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
)

type entityList map[string]struct {
	Codepoints []int  `json:"codepoints"`
	Characters string `json:"characters"`
}

func main() {
	resp, err := http.Get("https://html.spec.whatwg.org/entities.json")
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		log.Fatal(resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}
	var list entityList
	if err := json.Unmarshal(data, &list); err != nil {
		log.Fatal(err)
	}

	var names []string
	for name := range list {
		if !strings.HasSuffix(name, ";") {
			continue // only the semicolon-terminated names; ours are always looked up with ';'
		}
		names = append(names, strings.TrimSuffix(strings.TrimPrefix(name, "&"), ";"))
	}
	sort.Strings(names)

	fmt.Println("// Code generated by entitygen.go. DO NOT EDIT.")
	fmt.Println()
	fmt.Println("package mmark")
	fmt.Println()
	fmt.Println("var htmlEntity = map[string]string{")
	for _, name := range names {
		e := list["&"+name+";"]
		fmt.Printf("\t%q: %q,\n", name, e.Characters)
	}
	fmt.Println("}")
}
