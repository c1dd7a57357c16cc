package models

// 入力スプレッドシートの列名
const (
	ColEpic    = "EPIC"
	ColSummary = "SUMMARY"
	ColIOS     = "IOS"
	ColAnd     = "AND"
	ColServ    = "SERV"
	ColNotes   = "NOTES"
)

// 出力レコードのイシュータイプ
const (
	IssueTypeEpic  = "Epic"
	IssueTypeStory = "Story"
)

// JIRAのコンポーネント名
const (
	ComponentServer  = "Server"
	ComponentIOS     = "iOS"
	ComponentAndroid = "Android"
)

// ImportColumns はJIRA一括インポートCSVの出力列です（固定順）
var ImportColumns = []string{
	"Issue Type",
	"Epic Name",
	"Epic Link",
	"Summary",
	"Description",
	"Components",
	"Components 1",
	"Components 2",
	"Original Estimate",
}

// Row は表の1行を表します (ヘッダー名→セル値のマップ)
type Row map[string]string

// IsEmpty は指定された列のセルがすべて空かどうかを返します
func (r Row) IsEmpty(columns []string) bool {
	for _, col := range columns {
		if r[col] != "" {
			return false
		}
	}
	return true
}

// Table は表データを表します（列の順序リスト + 行のリスト）
type Table struct {
	Columns []string
	Rows    []Row
}

// HasColumn は指定された列が存在するかどうかを返します
func (t Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// ImportRecord はJIRA一括インポートの1レコードを表します。
// エピックの見積もりは仕上げ段階で集計値に置き換えられるため、
// AggregateIndex で対応する集計を参照します（ストーリーは -1）。
type ImportRecord struct {
	IssueType      string
	EpicName       string
	EpicLink       string
	Summary        string
	Description    string
	Components     string
	EstimateDays   float64
	AggregateIndex int
}

// EpicAggregate は1つのエピック配下のストーリー見積もりの集計です。
// 同名のエピックが再宣言された場合は別の集計として扱うため、
// 名前ではなく出現順で管理します。
type EpicAggregate struct {
	Name      string
	TotalDays float64
	Android   bool
	IOS       bool
	Server    bool
}

// ExpandResult は展開段階の出力（レコード列 + エピック集計）です
type ExpandResult struct {
	Records    []ImportRecord
	Aggregates []*EpicAggregate
}
