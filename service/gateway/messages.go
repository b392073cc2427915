package gateway

import (
	"errors"
	"strings"

	"github.com/elC0mpa/cloud-finance/model"
	tcerr "github.com/tencentcloud/tencentcloud-sdk-go/tencentcloud/common/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. The English text doubles as the catalog key.
const (
	msgMethodNotAllowed   = "only GET requests are supported"
	msgMissingCredentials = "missing Tencent Cloud credentials, set the TENCENT_SECRET_ID and TENCENT_SECRET_KEY environment variables"
	msgInvalidAction      = "invalid action parameter, supported values: %s"
	msgMissingTimeRange   = "%s requires the beginTime and endTime parameters"
	msgInternal           = "internal server error"
	msgInvalidAnalysis    = "invalid analysis, supported values: %s"
	msgInvalidParam       = "invalid %s parameter"
	msgMissingBudget      = "please provide the daily budget (dailyBudget)"
	msgNoData             = "unable to fetch billing data"
	msgCostHigh           = "cost is high"
	msgCostNormal         = "cost is normal"
	msgCostLow            = "cost is low"
)

var actionNames = map[language.Tag]map[model.Action]string{
	language.English: {
		model.ActionBillOverview:     "bill overview",
		model.ActionBillDetails:      "bill details",
		model.ActionCostStatistics:   "cost statistics",
		model.ActionAccountBalance:   "account balance",
		model.ActionConsumptionTrend: "consumption trend",
	},
	language.Chinese: {
		model.ActionBillOverview:     "账单概览",
		model.ActionBillDetails:      "详细账单",
		model.ActionCostStatistics:   "费用统计",
		model.ActionAccountBalance:   "账户余额",
		model.ActionConsumptionTrend: "消费趋势",
	},
}

var chinese = map[string]string{
	msgMethodNotAllowed:   "只支持GET请求",
	msgMissingCredentials: "缺少腾讯云凭证，请设置TENCENT_SECRET_ID和TENCENT_SECRET_KEY环境变量",
	msgInvalidAction:      "无效的action参数，支持的值：%s",
	msgMissingTimeRange:   "%s需要提供beginTime和endTime参数",
	msgInternal:           "服务器内部错误",
	msgInvalidAnalysis:    "无效的分析类型，支持的值：%s",
	msgInvalidParam:       "无效的%s参数",
	msgMissingBudget:      "请提供每日预算 (dailyBudget)",
	msgNoData:             "无法获取账单数据",
	msgCostHigh:           "成本偏高",
	msgCostNormal:         "成本正常",
	msgCostLow:            "成本偏低",
}

var levelMessages = map[model.CostLevel]string{
	model.LevelHigh:   msgCostHigh,
	model.LevelNormal: msgCostNormal,
	model.LevelLow:    msgCostLow,
}

func init() {
	for key, zh := range chinese {
		_ = message.SetString(language.Chinese, key, zh)
		_ = message.SetString(language.English, key, key)
	}
}

// Localizer picks the display language for a request
type Localizer struct {
	supported []language.Tag
	matcher   language.Matcher
}

// NewLocalizer returns a Localizer that falls back to defaultLang.
// Unknown defaults fall back to Chinese.
func NewLocalizer(defaultLang string) *Localizer {
	def, err := language.Parse(defaultLang)
	if err != nil {
		def = language.Chinese
	}
	base, _ := def.Base()
	def = language.Make(base.String())
	if def != language.English {
		def = language.Chinese
	}

	supported := []language.Tag{def}
	for _, tag := range []language.Tag{language.Chinese, language.English} {
		if tag != def {
			supported = append(supported, tag)
		}
	}

	return &Localizer{
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}
}

// Printer renders catalog messages in one language
type Printer struct {
	*message.Printer
	tag language.Tag
}

func newPrinter(tag language.Tag) *Printer {
	return &Printer{Printer: message.NewPrinter(tag), tag: tag}
}

// Tag returns the language messages are rendered in
func (p *Printer) Tag() language.Tag {
	return p.tag
}

func (p *Printer) levelDescription(level model.CostLevel) string {
	if key, ok := levelMessages[level]; ok {
		return p.Sprintf(key)
	}
	return string(level)
}

func (p *Printer) actionName(a model.Action) string {
	if name, ok := actionNames[p.tag][a]; ok {
		return name
	}
	return a.String()
}

// Default returns the printer for the configured default language
func (l *Localizer) Default() *Printer {
	return newPrinter(l.supported[0])
}

// Printer resolves an explicit lang value first, then an Accept-Language header
func (l *Localizer) Printer(lang, acceptLanguage string) *Printer {
	if lang = strings.TrimSpace(lang); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			_, idx, conf := l.matcher.Match(tag)
			if conf != language.No {
				return newPrinter(l.supported[idx])
			}
		}
	}

	if acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			_, idx, conf := l.matcher.Match(tags...)
			if conf != language.No {
				return newPrinter(l.supported[idx])
			}
		}
	}

	return l.Default()
}

// ErrorMessage renders err for display. Client errors use the catalog;
// upstream errors keep the provider's own message.
func ErrorMessage(p *Printer, err error) string {
	var qe *model.QueryError
	if !errors.As(err, &qe) {
		return upstreamMessage(p, err)
	}

	switch qe.Kind {
	case model.KindMethodNotAllowed:
		return p.Sprintf(msgMethodNotAllowed)
	case model.KindConfiguration:
		return p.Sprintf(msgMissingCredentials)
	case model.KindInvalidArgument:
		switch qe.Param {
		case "":
			return p.Sprintf(msgInvalidAction, validActions())
		case paramAnalysis:
			return p.Sprintf(msgInvalidAnalysis, validAnalyses())
		}
		return p.Sprintf(msgInvalidParam, qe.Param)
	case model.KindMissingParameter:
		if qe.Param == paramDailyBudget {
			return p.Sprintf(msgMissingBudget)
		}
		return p.Sprintf(msgMissingTimeRange, p.actionName(qe.Action))
	case model.KindNoData:
		return p.Sprintf(msgNoData)
	default:
		return upstreamMessage(p, qe.Err)
	}
}

func upstreamMessage(p *Printer, err error) string {
	if err == nil {
		return p.Sprintf(msgInternal)
	}

	var sdkErr *tcerr.TencentCloudSDKError
	if errors.As(err, &sdkErr) && sdkErr.GetMessage() != "" {
		return sdkErr.GetMessage()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return p.Sprintf(msgInternal)
}

func validActions() string {
	names := make([]string, 0, len(model.Actions()))
	for _, a := range model.Actions() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func validAnalyses() string {
	names := make([]string, 0, len(model.Analyses()))
	for _, a := range model.Analyses() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}
