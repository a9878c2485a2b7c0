package mood

import (
	"context"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const maxFoodTypes = 3

const systemPrompt = `你是「MoodEat 橘貓」，一隻圓滾滾、有點懶散、卻對美食瞭若指掌的橘貓美食夥伴。
**角色設定：**
- 語氣：可愛、對食物充滿熱情、慵懶隨性，句尾偶爾加「喵」或貓咪表情（🐱、🐾）。
- 語言：繁體中文（台灣）。
- 你理解人類的情緒，但始終相信食物是最好的解藥。

**任務：**
1. 分析使用者輸入，判斷他們的心情（mood）與情境。
2. 如果輸入太模糊（例如「隨便」、「餓了」），請產生 followUpQuestion 縮小範圍（例如「想吃重口味還是清爽的？喵」）。
3. 如果資訊足夠，對應出 3 個不同的 foodTypes，必須是適合地圖搜尋的精準關鍵字（料理或菜式名稱），不要整句話。
4. 用橘貓的口吻寫一段 1-2 句的 reason。

**對應策略範例：**
- 生氣／壓力大 -> 酥脆、有嚼勁、辣（炸雞、牛排、麻辣鍋）
- 難過／寂寞 -> 療癒、溫暖、甜（拉麵、粥、甜點）
- 開心／慶祝 -> 分享、高級、熱鬧（燒肉、居酒屋、披薩）
- 疲憊 -> 滋補、好入口、溫熱（雞湯、牛肉湯）
- 選擇困難 -> 人氣、多樣（自助餐、美食街）

**輸出格式（只輸出 JSON，不要任何其他文字）：**
{
  "mood": "string",
  "reason": "string",
  "foodTypes": ["string", "string", "string"],
  "followUpQuestion": "string（選填）"
}`

// Analysis is the structured outcome of one mood inference.
type Analysis struct {
	Mood             string   `json:"mood"`
	Reason           string   `json:"reason"`
	FoodTypes        []string `json:"foodTypes"`
	FollowUpQuestion string   `json:"followUpQuestion,omitempty"`
}

type Input struct {
	Text    string
	History []string
}

// Analyzer turns the latest chat message plus history into an Analysis. It
// never fails: every degraded path yields the fixed fallback instead.
type Analyzer interface {
	Analyze(ctx context.Context, in Input) *Analysis
}

// Fallback is the single degraded mood result used by every failure path:
// unconfigured model, unreachable service, unparsable output.
func Fallback() *Analysis {
	return &Analysis{
		Mood:             "Unknown",
		FoodTypes:        []string{},
		Reason:           "（模擬模式）因為 API Key 權限不足，我無法分析你的情緒。不過我們可以來玩個遊戲！",
		FollowUpQuestion: "你想吃「中式」還是「西式」的料理呢？",
	}
}

type ModelAnalyzer struct {
	log      logx.Logger
	runnable compose.Runnable[Input, *Analysis]
	timeout  time.Duration
}

// NewAnalyzer builds the chain-backed analyzer. A nil chat model or a chain
// compile failure yields a fallback-only analyzer, so callers always get a
// working Analyzer.
func NewAnalyzer(ctx context.Context, logger logx.Logger, chatModel model.BaseChatModel, timeout time.Duration) Analyzer {
	if chatModel == nil {
		logger.Infof("mood: no chat model configured, serving fallback analyses")
		return fallbackAnalyzer{log: logger}
	}

	chain := compose.NewChain[Input, *Analysis]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, in Input) ([]*schema.Message, error) {
		return []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(composeUserContext(in)),
		}, nil
	}))

	chain.AppendChatModel(chatModel)

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*Analysis, error) {
		if msg == nil {
			return nil, errEmptyMessage
		}
		return parseAnalysis(msg.Content)
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		logger.Errorf("mood: compile analysis chain failed: %v", err)
		return fallbackAnalyzer{log: logger}
	}

	return &ModelAnalyzer{
		log:      logger,
		runnable: runnable,
		timeout:  timeout,
	}
}

func (a *ModelAnalyzer) Analyze(ctx context.Context, in Input) *Analysis {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	analysis, err := a.runnable.Invoke(ctx, in)
	if err != nil {
		a.log.Errorf("mood: analysis failed, using fallback: %v", err)
		return Fallback()
	}
	if analysis == nil {
		return Fallback()
	}
	return analysis
}

type fallbackAnalyzer struct {
	log logx.Logger
}

func (f fallbackAnalyzer) Analyze(_ context.Context, _ Input) *Analysis {
	return Fallback()
}

func composeUserContext(in Input) string {
	var sb strings.Builder
	if len(in.History) > 0 {
		sb.WriteString("Previous conversation:\n")
		for _, h := range in.History {
			sb.WriteString("- ")
			sb.WriteString(h)
			sb.WriteString("\n")
		}
		sb.WriteString("Current input: ")
		sb.WriteString(in.Text)
		return sb.String()
	}
	sb.WriteString("User input: ")
	sb.WriteString(in.Text)
	return sb.String()
}
