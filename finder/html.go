package finder

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kovetskiy/jax/types"
	"github.com/reconquest/karma-go"
)

// DocumentItem groups the math found in one text block of an HTML
// document.
type DocumentItem struct {
	Parent string
	Text   string
	Items  []types.MathItem
}

// FindHTML scans an HTML document for configured math spans. Subtrees
// under skip-list tags or the ignore class are left alone; the process
// class re-enables scanning inside an ignored subtree.
func (finder *Finder) FindHTML(reader io.Reader) ([]DocumentItem, error) {
	document, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, karma.Format(err, "unable to parse html document")
	}

	root := document.Find("body")
	if root.Length() == 0 {
		root = document.Selection
	}

	var found []DocumentItem
	finder.findInSelection(root, false, &found)
	return found, nil
}

func (finder *Finder) findInSelection(
	sel *goquery.Selection,
	ignoring bool,
	found *[]DocumentItem,
) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		name := goquery.NodeName(child)

		if name == "#text" {
			if ignoring {
				return
			}

			text := child.Text()
			items := finder.FindString(text)
			if len(items) == 0 {
				return
			}

			*found = append(*found, DocumentItem{
				Parent: goquery.NodeName(sel),
				Text:   text,
				Items:  items,
			})
			return
		}

		if strings.HasPrefix(name, "#") {
			return
		}

		if _, skip := finder.skipTags[name]; skip {
			return
		}

		childIgnoring := ignoring
		if finder.ignoreClass != "" && child.HasClass(finder.ignoreClass) {
			childIgnoring = true
		}
		if finder.processClass != "" && child.HasClass(finder.processClass) {
			childIgnoring = false
		}

		finder.findInSelection(child, childIgnoring, found)
	})
}
