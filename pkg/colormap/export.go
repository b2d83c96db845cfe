package colormap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/colormap/pkg/errors"
	"github.com/arthur-debert/colormap/pkg/filesystem"
	"github.com/beevik/etree"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type yamlColor struct {
	Name string `yaml:"name"`
	RGB  [3]int `yaml:"rgb,flow"`
}

type tomlColor struct {
	Name string `toml:"name"`
	R    int    `toml:"r"`
	G    int    `toml:"g"`
	B    int    `toml:"b"`
}

type tomlDocument struct {
	Color []tomlColor `toml:"color"`
}

// Write serializes m to w in the given format, colors sorted by name
func Write(w io.Writer, m ColorMap, format Format) error {
	var err error
	switch format {
	case "", FormatCSV:
		err = writeCSV(w, m)
	case FormatYAML:
		err = writeYAML(w, m)
	case FormatTOML:
		err = writeTOML(w, m)
	case FormatXML:
		err = writeXML(w, m)
	default:
		return errors.Newf(errors.ErrUnknownFormat, "unknown export format %q", string(format))
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", format.String())
	}
	return nil
}

// Export creates (or truncates) path on fsys and writes m into it.
// Partial output may remain if writing fails.
func Export(fsys filesystem.FS, path string, m ColorMap, format Format) (err error) {
	f, err := fsys.Create(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot create %s", path).
			WithDetail("path", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrFileWrite, "failed to close %s", path).
				WithDetail("path", path)
		}
	}()

	if err := Write(f, m, format); err != nil {
		if cmErr, ok := err.(*errors.ColorMapError); ok {
			return cmErr.WithDetail("path", path)
		}
		return err
	}
	return nil
}

// FormatCSVLine renders one CSV line, newline included
func FormatCSVLine(e Entry) string {
	return fmt.Sprintf("%s, %s\n", e.RGB, e.Name)
}

func writeCSV(w io.Writer, m ColorMap) error {
	bw := bufio.NewWriter(w)
	for _, e := range m.Entries() {
		if _, err := bw.WriteString(FormatCSVLine(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeYAML(w io.Writer, m ColorMap) error {
	entries := m.Entries()
	colors := make([]yamlColor, 0, len(entries))
	for _, e := range entries {
		colors = append(colors, yamlColor{Name: e.Name, RGB: [3]int{e.RGB.R, e.RGB.G, e.RGB.B}})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(colors); err != nil {
		return err
	}
	return enc.Close()
}

func writeTOML(w io.Writer, m ColorMap) error {
	entries := m.Entries()
	doc := tomlDocument{Color: make([]tomlColor, 0, len(entries))}
	for _, e := range entries {
		doc.Color = append(doc.Color, tomlColor{Name: e.Name, R: e.RGB.R, G: e.RGB.G, B: e.RGB.B})
	}
	return toml.NewEncoder(w).Encode(doc)
}

func writeXML(w io.Writer, m ColorMap) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("colors")
	for _, e := range m.Entries() {
		el := root.CreateElement("color")
		el.CreateAttr("name", e.Name)
		el.CreateAttr("r", strconv.Itoa(e.RGB.R))
		el.CreateAttr("g", strconv.Itoa(e.RGB.G))
		el.CreateAttr("b", strconv.Itoa(e.RGB.B))
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
