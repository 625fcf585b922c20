// Package deploy packages a rendered document into a static GitHub Pages
// bundle: an HTML viewer, the document as README content, and a CI workflow
// that publishes both.
package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// File is one entry of the generated bundle, relative to the bundle root.
type File struct {
	Path    string
	Content string
}

// Bundle holds everything needed to publish a document as a static site.
type Bundle struct {
	RepoName string
	Files    []File
}

const pagesWorkflow = `name: Deploy to GitHub Pages

on:
  push:
    branches: [ main ]
  workflow_dispatch:

permissions:
  contents: read
  pages: write
  id-token: write

concurrency:
  group: "pages"
  cancel-in-progress: false

jobs:
  deploy:
    environment:
      name: github-pages
      url: ${{ steps.deployment.outputs.page_url }}
    runs-on: ubuntu-latest
    steps:
      - name: Checkout
        uses: actions/checkout@v4
      - name: Setup Pages
        uses: actions/configure-pages@v4
      - name: Upload artifact
        uses: actions/upload-pages-artifact@v3
        with:
          path: '.'
      - name: Deploy to GitHub Pages
        id: deployment
        uses: actions/deploy-pages@v4
`

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; line-height: 1.6; }
        h1, h2, h3 { color: #333; }
        pre { background: #f5f5f5; padding: 15px; border-radius: 5px; overflow-x: auto; }
        code { background: #f0f0f0; padding: 2px 4px; border-radius: 3px; }
        .prd-content { background: white; padding: 20px; border-radius: 10px; box-shadow: 0 2px 10px rgba(0,0,0,0.1); }
    </style>
</head>
<body>
    <div class="prd-content">
        <div id="prd-markdown"></div>
    </div>

    <script src="https://cdn.jsdelivr.net/npm/marked/marked.min.js"></script>
    <script>
        const prdMarkdown = ` + "`%s`" + `;
        document.getElementById('prd-markdown').innerHTML = marked.parse(prdMarkdown);
    </script>
</body>
</html>
`

var repoNameSanitizer = regexp.MustCompile(`\s+`)

// RepoName derives a repository name from the project name: lowercased with
// whitespace runs collapsed to dashes. Empty names fall back to "my-project".
func RepoName(projectName string) string {
	name := repoNameSanitizer.ReplaceAllString(strings.ToLower(strings.TrimSpace(projectName)), "-")
	if name == "" {
		return "my-project"
	}
	return name
}

// New builds the bundle for a rendered markdown document. Backticks in the
// document are escaped so the embedded template literal survives.
func New(projectName, markdown string) Bundle {
	title := projectName
	if title == "" {
		title = "My Project"
	}
	escaped := strings.ReplaceAll(markdown, "`", "\\`")
	return Bundle{
		RepoName: RepoName(projectName),
		Files: []File{
			{Path: "index.html", Content: fmt.Sprintf(indexTemplate, title, escaped)},
			{Path: "README.md", Content: markdown},
			{Path: filepath.Join(".github", "workflows", "pages.yml"), Content: pagesWorkflow},
		},
	}
}

// WriteTo writes the bundle files under dir, creating directories as needed.
func (b Bundle) WriteTo(dir string) error {
	for _, f := range b.Files {
		dest := filepath.Join(dir, f.Path)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}
	}
	return nil
}

// Instructions returns the manual setup steps for publishing the bundle.
func (b Bundle) Instructions() string {
	return fmt.Sprintf(`## GitHub Pages Deployment Instructions

1. Create a new repository on GitHub
   - Go to https://github.com/new
   - Repository name: %s
   - Make it public (required for free GitHub Pages)

2. Upload the bundle files to your repository:
   - index.html
   - README.md
   - .github/workflows/pages.yml

3. Enable GitHub Pages:
   - Go to repository Settings -> Pages
   - Source: "GitHub Actions"
   - Save

4. Your site will be live at:
   https://YOUR_USERNAME.github.io/%s

The workflow redeploys the document whenever you push changes.
`, b.RepoName, b.RepoName)
}
