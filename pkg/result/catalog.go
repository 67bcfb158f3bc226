package result

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCatalogIntegrity 目录定义有误（空后缀、重复后缀/符号名），属于启动期致命配置错误
var ErrCatalogIntegrity = errors.New("result: catalog integrity")

// Entry 目录中的一条结果定义
type Entry struct {
	Name        string `json:"name"`
	Suffix      string `json:"suffix"`
	Description string `json:"message"`
}

// Catalog 不可变的结果目录；构造后只读，可被任意 goroutine 并发读取
type Catalog struct {
	entries  []Entry
	bySuffix map[string]int
	byName   map[string]int
}

// NewCatalog 校验并构造目录。后缀与符号名都必须非空且唯一。
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries:  make([]Entry, len(entries)),
		bySuffix: make(map[string]int, len(entries)),
		byName:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if e.Suffix == "" {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "entry #%d (%q): empty suffix", i, e.Name)
		}
		if e.Name == "" {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "entry #%d (suffix %q): empty name", i, e.Suffix)
		}
		if j, dup := c.bySuffix[e.Suffix]; dup {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "suffix %q shared by %s and %s",
				e.Suffix, c.entries[j].Name, e.Name)
		}
		if j, dup := c.byName[e.Name]; dup {
			return nil, errors.Wrapf(ErrCatalogIntegrity, "name %q declared twice (suffix %q and %q)",
				e.Name, c.entries[j].Suffix, e.Suffix)
		}
		c.bySuffix[e.Suffix] = i
		c.byName[e.Name] = i
	}
	return c, nil
}

// MustCatalog 同 NewCatalog，校验失败直接 panic
func MustCatalog(entries ...Entry) *Catalog {
	c, err := NewCatalog(entries...)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return c
}

// Lookup 按后缀精确查找（字符串值比较）
func (c *Catalog) Lookup(suffix string) (Entry, bool) {
	i, ok := c.bySuffix[suffix]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Entries 按声明顺序返回副本
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Catalog) Len() int { return len(c.entries) }
