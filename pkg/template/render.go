package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/tauri-community/mobinit/pkg/logging"
)

// RenderTree materializes every file under srcRoot in fsys into destDir,
// executing each file body and each relative file name as a template against
// ctx. A trailing .tmpl extension is stripped from the destination name.
func RenderTree(fsys fs.FS, srcRoot, destDir string, ctx Context) error {
	logger := logging.GetLogger("template")
	funcs := Funcs(ctx)

	return fs.WalkDir(fsys, srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			return err
		}

		destRel, err := renderString("path:"+rel, rel, funcs, ctx)
		if err != nil {
			return fmt.Errorf("render path %s: %w", rel, err)
		}
		destRel = strings.TrimSuffix(destRel, ".tmpl")
		dest := filepath.Join(destDir, destRel)

		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		body, err := renderString(rel, string(raw), funcs, ctx)
		if err != nil {
			return fmt.Errorf("render template %s: %w", rel, err)
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("create directory for %s: %w", dest, err)
		}

		mode := os.FileMode(0644)
		if strings.HasSuffix(dest, ".sh") || strings.HasSuffix(dest, "gradlew") {
			mode = 0755
		}
		if err := os.WriteFile(dest, []byte(body), mode); err != nil {
			return fmt.Errorf("write %s: %w", dest, err)
		}

		logger.Debug().Str("src", path).Str("dest", dest).Msg("Rendered template")
		return nil
	})
}

func renderString(name, text string, funcs template.FuncMap, ctx Context) (string, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]interface{}(ctx)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
