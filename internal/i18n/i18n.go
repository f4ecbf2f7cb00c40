// Package i18n carries the dashboard's UI label tables. The backend
// serves them as plain key→label maps; rendering is the frontend's
// job.
package i18n

// DefaultLang is used when the requested language is unknown.
const DefaultLang = "zh"

var tables = map[string]map[string]string{
	"en": {
		"title":                "Stock Price Interactive Analysis Dashboard",
		"stock_code":           "Stock Code",
		"start_date":           "Start Date",
		"end_date":             "End Date",
		"interval":             "Interval",
		"daily":                "Daily",
		"weekly":               "Weekly",
		"monthly":              "Monthly",
		"submit":               "Submit",
		"chinese":              "Chinese",
		"english":              "English",
		"date":                 "Date",
		"open":                 "Open",
		"close":                "Close",
		"high":                 "High",
		"low":                  "Low",
		"volume":               "Volume",
		"amount":               "Amount",
		"change_amount":        "Change Amount",
		"change_percent":       "Change Percent",
		"turnover_rate":        "Turnover Rate",
		"stock_data":           "Stock Data",
		"trend_chart":          "Trend Chart",
		"loading":              "Loading...",
		"select_language":      "Select Language",
		"cumulative_data":      "Cumulative Data",
		"export_csv":           "Export CSV",
		"refresh_data":         "Refresh Data",
		"stock_name":           "Stock Name",
		"latest_price":         "Latest Price",
		"price_change":         "Price Change",
		"price_change_percent": "Price Change %",
	},
	"zh": {
		"title":                "股票价格交互式分析仪表盘",
		"stock_code":           "股票代码",
		"start_date":           "开始日期",
		"end_date":             "结束日期",
		"interval":             "间隔",
		"daily":                "日",
		"weekly":               "周",
		"monthly":              "月",
		"submit":               "提交",
		"chinese":              "中文",
		"english":              "英文",
		"date":                 "日期",
		"open":                 "开盘",
		"close":                "收盘",
		"high":                 "最高",
		"low":                  "最低",
		"volume":               "成交量",
		"amount":               "成交金额",
		"change_amount":        "涨跌额",
		"change_percent":       "涨跌幅",
		"turnover_rate":        "换手率",
		"stock_data":           "股票数据",
		"trend_chart":          "趋势图",
		"loading":              "加载中...",
		"select_language":      "选择语言",
		"cumulative_data":      "累计数据",
		"export_csv":           "导出CSV",
		"refresh_data":         "刷新数据",
		"stock_name":           "股票名称",
		"latest_price":         "最新价",
		"price_change":         "涨跌额",
		"price_change_percent": "涨跌幅%",
	},
}

// Texts returns the label table for lang, falling back to DefaultLang
// for unknown languages. The returned map is a copy.
func Texts(lang string) map[string]string {
	t, ok := tables[lang]
	if !ok {
		t = tables[DefaultLang]
	}
	out := make(map[string]string, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "zh"}
}
