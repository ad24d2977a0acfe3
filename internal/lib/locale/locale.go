// Package locale реализует локализацию сообщений ответов сервера.
//
// Фразы хранятся во встроенных JSON-файлах locales/<lang>.json, ключом служит
// английская фраза. Неизвестный язык откатывается к английскому, неизвестная
// фраза возвращается как есть.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed locales/*.json
var localeFiles embed.FS

const defaultLang = "en"

var phrases = map[string]map[string]string{}

func init() {
	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		panic(fmt.Sprintf("locale: cannot read embedded locales: %v", err))
	}
	for _, entry := range entries {
		raw, err := localeFiles.ReadFile("locales/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("locale: cannot read %s: %v", entry.Name(), err))
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			panic(fmt.Sprintf("locale: invalid %s: %v", entry.Name(), err))
		}
		lang := entry.Name()[:len(entry.Name())-len(".json")]
		phrases[lang] = table
	}
}

// Localize возвращает фразу на запрошенном языке.
func Localize(lang, phrase string) string {
	table, ok := phrases[lang]
	if !ok {
		table = phrases[defaultLang]
	}
	if localized, ok := table[phrase]; ok {
		return localized
	}
	return phrase
}
