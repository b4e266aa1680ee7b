package prompt

import (
	"strconv"
	"strings"

	"vetwatch/internal/record"
)

// Task identifies what a prompt asks the model to do.
type Task string

const (
	TaskDate         Task = "date"
	TaskDisease      Task = "disease"
	TaskAnimal       Task = "animal"
	TaskLocation     Task = "location"
	TaskOrganization Task = "organization"
	TaskSummary      Task = "summary"
)

// EntityTasks lists the five extraction tasks in a stable order.
var EntityTasks = []Task{TaskDate, TaskDisease, TaskAnimal, TaskLocation, TaskOrganization}

type key struct {
	task Task
	lang record.Language
}

// Catalog maps (task, language) to a prompt template. It is built once
// and read-only afterwards; lookups for unsupported languages fall back
// to the English template.
type Catalog struct {
	templates map[key]string
}

// NewCatalog loads the built-in template set.
func NewCatalog() *Catalog {
	return &Catalog{templates: builtinTemplates()}
}

const (
	// Content passed to entity prompts is capped to keep calls fast;
	// the relevant facts are almost always near the top of an article.
	entityContentLimit = 2000

	// Summary prompts carry more context than entity prompts.
	summaryContentLimit = 2500
)

// Entity renders the prompt for one extraction task.
func (c *Catalog) Entity(task Task, lang record.Language, title, content string) string {
	tmpl := c.lookup(task, lang)
	return render(tmpl, title, truncate(content, entityContentLimit), 0)
}

// Summary renders the summary prompt for the given word target.
func (c *Catalog) Summary(lang record.Language, title, content string, words int) string {
	tmpl := c.lookup(TaskSummary, lang)
	return render(tmpl, title, truncate(content, summaryContentLimit), words)
}

func (c *Catalog) lookup(task Task, lang record.Language) string {
	if tmpl, ok := c.templates[key{task, lang}]; ok {
		return tmpl
	}
	return c.templates[key{task, record.LangEnglish}]
}

func render(tmpl, title, content string, words int) string {
	r := strings.NewReplacer(
		"{title}", title,
		"{content}", content,
		"{words}", strconv.Itoa(words),
	)
	return r.Replace(tmpl)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
