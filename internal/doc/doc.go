// Package doc defines the assembled document model produced by the HWP
// parser: reconstructed text, tables, embedded images and file metadata,
// plus the Markdown/MDX renderings consumed by the CLI.
package doc

import (
	"fmt"
	"strings"
)

// Document is the fully materialized result of one parse call.
type Document struct {
	Content  string   `json:"content"`
	Tables   []Table  `json:"tables"`
	Images   []Image  `json:"images"`
	Metadata Metadata `json:"metadata"`
}

// Metadata carries document-level information gathered from the file
// header, the stream directory and the summary information stream.
type Metadata struct {
	Version      string `json:"version"`
	SectionCount int    `json:"section_count"`
	BinDataCount int    `json:"bin_data_count"`
	Compressed   bool   `json:"compressed"`
	Encrypted    bool   `json:"encrypted"`
	Title        string `json:"title,omitempty"`
	Author       string `json:"author,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Keywords     string `json:"keywords,omitempty"`
	Created      string `json:"created,omitempty"`
	Modified     string `json:"modified,omitempty"`
}

// ToMarkdown renders the document body: content first, then each table,
// then links to the extracted image assets.
func (d *Document) ToMarkdown() string {
	var md strings.Builder

	if content := strings.TrimSpace(d.Content); content != "" {
		md.WriteString(content)
		md.WriteString("\n")
	}

	for i := range d.Tables {
		md.WriteString("\n")
		md.WriteString(d.Tables[i].ToMarkdown())
	}

	for _, img := range d.Images {
		fmt.Fprintf(&md, "\n![%s](assets/%s)\n", img.Name, img.Name)
	}

	return md.String()
}

// FrontMatter renders the YAML front matter block for MDX output.
// 프런트매터에는 항상 원본 버전을 기록한다.
func (d *Document) FrontMatter() string {
	var md strings.Builder

	md.WriteString("---\n")
	if d.Metadata.Title != "" {
		fmt.Fprintf(&md, "title: %s\n", d.Metadata.Title)
	}
	if d.Metadata.Author != "" {
		fmt.Fprintf(&md, "author: %s\n", d.Metadata.Author)
	}
	if d.Metadata.Subject != "" {
		fmt.Fprintf(&md, "subject: %s\n", d.Metadata.Subject)
	}
	if d.Metadata.Created != "" {
		fmt.Fprintf(&md, "date: %s\n", d.Metadata.Created)
	}
	fmt.Fprintf(&md, "source_version: %s\n", d.Metadata.Version)
	md.WriteString("---\n\n")

	return md.String()
}

// ToMDX renders the document as MDX: YAML front matter followed by the
// markdown body.
func (d *Document) ToMDX() string {
	return d.FrontMatter() + d.ToMarkdown()
}

// Manifest describes the .mdm companion file written next to an MDX
// document: one entry per extracted resource.
type Manifest struct {
	Version   string              `json:"version"`
	Source    string              `json:"source"`
	Resources map[string]Resource `json:"resources"`
}

// Resource is a single manifest entry.
type Resource struct {
	Type   string `json:"type"`
	Format string `json:"format"`
	Src    string `json:"src"`
}

// BuildManifest creates the resource manifest for this document. source is
// the original file name recorded for traceability.
func (d *Document) BuildManifest(source string) *Manifest {
	m := &Manifest{
		Version:   "1.0",
		Source:    source,
		Resources: make(map[string]Resource),
	}
	for _, img := range d.Images {
		m.Resources[img.Name] = Resource{
			Type:   "image",
			Format: img.Format,
			Src:    "assets/" + img.Name,
		}
	}
	return m
}
