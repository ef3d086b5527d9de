package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	goslug "github.com/gosimple/slug"

	"github.com/eastvale/siteworks"
)

// scaffoldData holds the template variables for a new content file.
type scaffoldData struct {
	Title string
	Date  string
}

var scaffolds = map[string]struct {
	dir      string
	template string
}{
	"post": {
		dir: "blog",
		template: `---
title: {{.Title}}
excerpt: One-line summary shown on listing cards.
author: Your Name
publishedAt: "{{.Date}}"
readTime: 4 min
tags:
  - engineering
featured: false
---

Write the post here.
`,
	},
	"case-study": {
		dir: "case-studies",
		template: `---
title: {{.Title}}
client: Client Name
description: One-line summary shown on listing cards.
challenge: What the client was up against.
outcome: What shipped and what it changed.
tags:
  - platform
featured: false
publishedAt: "{{.Date}}"
---

## The work

Describe the engagement here.
`,
	},
	"team": {
		dir: "team",
		template: `---
name: {{.Title}}
role: Role Title
bio: One-line bio shown on the team page.
tags:
  - Strategy
order: 100
featured: false
---

Longer bio goes here.
`,
	},
}

func runNew(kind, title string) error {
	sc, ok := scaffolds[kind]
	if !ok {
		return fmt.Errorf("unknown content kind %q (want post, case-study, or team)", kind)
	}

	contentDir := siteworks.EnvOr("SITE_CONTENT_DIR", "content")
	dir := filepath.Join(contentDir, sc.dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(dir, goslug.Make(title)+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	tmpl, err := template.New(kind).Parse(sc.template)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := scaffoldData{
		Title: title,
		Date:  time.Now().Format("2006-01-02"),
	}
	if err := tmpl.Execute(f, data); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
