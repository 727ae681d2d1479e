package engine

import (
	"strings"
)

// Advisor 缺少食材的替代建議，表為固定領域知識，不從目錄推導
type Advisor struct {
	table map[string][]string
}

// defaultSubstitutions 常見替代食材表，鍵為小寫正規名稱
var defaultSubstitutions = map[string][]string{
	"butter":  {"margarine", "olive oil", "ghee"},
	"cream":   {"yogurt", "milk + butter (small)"},
	"egg":     {"banana (mashed)", "applesauce", "flaxseed + water"},
	"milk":    {"soy milk", "almond milk", "water + milk powder"},
	"cheese":  {"nutritional yeast", "cream cheese (if ok)"},
	"garlic":  {"garlic powder", "asafoetida (hing)"},
	"onion":   {"shallot", "green onion"},
	"salt":    {"soy sauce (in some recipes)", "salt substitute"},
	"rice":    {"quinoa (different texture)"},
	"paneer":  {"tofu"},
	"chicken": {"tofu (vegetarian swap)", "seitan"},
	"tomato":  {"tomato puree", "passata"},
	"sugar":   {"honey", "maple syrup"},
}

// NewAdvisor 建立使用內建替代表的建議服務
func NewAdvisor() *Advisor {
	return &Advisor{table: defaultSubstitutions}
}

// NewAdvisorWithTable 以自訂替代表建立建議服務，表由呼叫端持有且不得再修改
func NewAdvisorWithTable(table map[string][]string) *Advisor {
	return &Advisor{table: table}
}

// Suggest 為缺少的食材查找替代建議。查找鍵為小寫名稱，
// 表中不存在的食材直接省略，不視為錯誤。
func (a *Advisor) Suggest(missing []string) map[string][]string {
	suggestions := make(map[string][]string)
	for _, m := range missing {
		if subs, ok := a.table[strings.ToLower(m)]; ok {
			suggestions[m] = subs
		}
	}
	return suggestions
}
