// Package pattern classifies slides into presentation patterns, derives the
// pattern-specific payloads, generates speaker notes, and validates deck
// structure. Classification is purely lexical: fixed keyword tables, no
// language model involved.
package pattern

import "github.com/deckgen/deckgen/internal/deck"

// Keywords binds one candidate pattern to its trigger terms. Candidates are
// scored in declaration order; earlier entries win score ties.
type Keywords struct {
	Pattern deck.Pattern
	Terms   []string
}

// DefaultKeywords is the standard bilingual keyword catalog. Title, section
// and closing are absent on purpose: those patterns come from document
// position and markers, never from keyword scoring.
func DefaultKeywords() []Keywords {
	return []Keywords{
		{deck.PatternCompare, []string{
			"vs", "対比", "比較", "違い", "差", "選択肢", "メリット", "デメリット",
			"before", "after", "以前", "以降", "左右", "優劣",
		}},
		{deck.PatternProcess, []string{
			"手順", "ステップ", "プロセス", "工程", "流れ", "段階", "方法",
			"step", "process", "procedure", "workflow", "how to",
		}},
		{deck.PatternTimeline, []string{
			"時系列", "スケジュール", "予定", "計画", "ロードマップ", "歴史",
			"timeline", "schedule", "roadmap", "history", "年", "月", "日",
		}},
		{deck.PatternProgress, []string{
			"進捗", "進度", "達成率", "完了", "進行", "パーセント", "%",
			"progress", "completion", "achievement", "status",
		}},
		{deck.PatternTable, []string{
			"表", "一覧", "リスト", "項目", "比較表", "仕様",
			"table", "list", "specification", "comparison",
		}},
		{deck.PatternDiagram, []string{
			"図", "関係", "構造", "組織", "フロー", "レーン", "部門",
			"diagram", "structure", "organization", "flow", "lane",
		}},
		{deck.PatternCards, []string{
			"カード", "項目", "要素", "特徴", "機能", "サービス",
			"cards", "features", "services", "items", "elements",
		}},
	}
}

// agendaKeywords flags table-of-contents slides for the section-structure
// validation rule.
var agendaKeywords = []string{"アジェンダ", "agenda", "目次"}
