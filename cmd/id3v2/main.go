package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/riverglen/id3v2"
	"github.com/riverglen/id3v2/frame"
	"github.com/riverglen/id3v2/internal/wire"
	"github.com/riverglen/id3v2/lib"
)

func main() {
	app := cli.NewApp()
	app.Name = "id3v2"
	app.Usage = "reads and writes ID3v2 tags"
	app.Description = "an ID3v2.2/2.3/2.4 tag codec"
	app.Version = "0.1.0"
	app.Commands = commands()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "dump",
			Usage:     "print every frame in a tag",
			ArgsUsage: "<file>",
			Action:    commandDump,
		},
		{
			Name:      "get",
			Usage:     "print the value of one text frame",
			ArgsUsage: "<file> <identifier>",
			Action:    commandGet,
		},
		{
			Name:      "set-text",
			Usage:     "set a text frame and rewrite the tag in place",
			ArgsUsage: "<file> <identifier> <value>",
			Action:    commandSetText,
			Flags: []cli.Flag{
				cli.IntFlag{Name: "version", Usage: "pin the output ID3v2 major version (2, 3 or 4); 0 picks the highest compatible version"},
			},
		},
		{
			Name:      "convert",
			Usage:     "re-encode a tag's frames at a different ID3v2 version",
			ArgsUsage: "<file> <version>",
			Action:    commandConvert,
		},
	}
}

func readTag(path string) (*id3v2.Tag, []byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	tag, err := id3v2.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return tag, data, nil
}

func commandDump(c *cli.Context) error {
	tag, data, err := readTag(c.Args().Get(0))
	if err != nil {
		return err
	}

	fmt.Printf("ID3v2.%d, %s on disk\n", tag.Version, lib.HumanBinarySize(len(data)))
	if tag.TagRestrictions != nil {
		fmt.Println("tag restrictions present")
	}
	for _, e := range tag.Entries {
		body, err := e.Body.EncodeBody(frame.Version(tag.Version))
		size := "?"
		if err == nil {
			size = lib.HumanDecimalSize(len(body))
		}
		fmt.Printf("%-4s %s  %v\n", e.Body.Identifier(), size, describe(e.Body))
	}
	return nil
}

func describe(b frame.Body) string {
	type stringer interface{ String() string }
	if s, ok := b.(stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%+v", b)
}

func commandGet(c *cli.Context) error {
	tag, _, err := readTag(c.Args().Get(0))
	if err != nil {
		return err
	}
	id := strings.ToUpper(c.Args().Get(1))

	for _, e := range tag.Entries {
		if e.Body.Identifier() != id {
			continue
		}
		if t, ok := e.Body.(frame.TextInformation); ok {
			fmt.Println(t.Text)
			return nil
		}
		fmt.Println(describe(e.Body))
		return nil
	}
	return fmt.Errorf("no %s frame found", id)
}

func commandSetText(c *cli.Context) error {
	path := c.Args().Get(0)
	id := strings.ToUpper(c.Args().Get(1))
	value := c.Args().Get(2)

	tag, data, err := readTag(path)
	if err != nil {
		return err
	}

	replaced := false
	for i, e := range tag.Entries {
		if e.Body.Identifier() == id {
			tag.Entries[i].Body = frame.TextInformation{ID: id, Encoding: wire.UTF8, Text: value}
			replaced = true
			break
		}
	}
	if !replaced {
		tag.Entries = append(tag.Entries, id3v2.Entry{
			Flags: frame.DefaultFlags(id),
			Body:  frame.TextInformation{ID: id, Encoding: wire.UTF8, Text: value},
		})
	}

	return rewrite(path, tag, data, c.Int("version"))
}

func commandConvert(c *cli.Context) error {
	path := c.Args().Get(0)
	var version int
	if _, err := fmt.Sscanf(c.Args().Get(1), "%d", &version); err != nil {
		return fmt.Errorf("invalid version %q", c.Args().Get(1))
	}

	tag, data, err := readTag(path)
	if err != nil {
		return err
	}
	return rewrite(path, tag, data, version)
}

func rewrite(path string, tag *id3v2.Tag, original []byte, version int) error {
	out, err := id3v2.Encode(tag.Entries, id3v2.EncodeOptions{
		ID3Version:   version,
		TextEncoding: wire.UTF8,
	})
	if err != nil {
		return err
	}
	fmt.Printf("encoded %s\n", lib.HumanBinarySize(len(out)))
	out = append(out, original[tag.EncodedSize:]...)
	return ioutil.WriteFile(path, out, 0o644)
}
