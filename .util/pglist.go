package main

// Utility to generate `git diff` commands for the Postgres source files
// referenced by GitHub URLs in comments. Use it in a Postgres Git clone to
// check whether the constants and range checks mirrored by the wire and
// types packages changed since the referenced release.
//
// go run .util/pglist.go

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

//nolint:gochecknoglobals
var sourceDirs = []string{"wire", "types"}

func main() {
	//  https://github.com/postgres/postgres/blob/REL_17_2/src/include/datatype/timestamp.h
	pgRegex := regexp.MustCompile(`postgres/postgres/blob/([^/]+)/([^#\s]+)`)

	found := map[string][]string{}
	for _, dir := range sourceDirs {
		logErr(filepath.WalkDir(dir, func(path string, info fs.DirEntry, err error) error {
			if err != nil || info.IsDir() || filepath.Ext(path) != ".go" {
				return err
			}
			file, err := os.Open(path)
			if err != nil {
				return err
			}
			defer file.Close()

			scanner := bufio.NewScanner(file)
			for scanner.Scan() {
				match := pgRegex.FindStringSubmatch(scanner.Text())
				if match == nil {
					continue
				}
				tag, src := match[1], strings.TrimSpace(match[2])
				if !slices.Contains(found[tag], src) {
					found[tag] = append(found[tag], src)
				}
			}
			return scanner.Err()
		}))
	}

	fmt.Println("# Clone the next release tag from the Postgres repo and run these diffs:")
	for _, cmd := range diffCommands(found) {
		fmt.Println(cmd)
	}
}

// diffCommands returns a git diff command for each file in found, ordered
// by tag and then by file.
func diffCommands(found map[string][]string) []string {
	tags := maps.Keys(found)
	slices.Sort(tags)
	var cmds []string
	for _, tag := range tags {
		files := slices.Clone(found[tag])
		slices.Sort(files)
		for _, f := range files {
			cmds = append(cmds, fmt.Sprintf("git diff %v -- %v", tag, f))
		}
	}
	return cmds
}

func logErr(err error) {
	if err != nil {
		panic(err)
	}
}
