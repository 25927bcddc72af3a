package tarot

// Card is a static major arcana catalog entry. Cards are selected, never
// mutated.
type Card struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Reading      string `json:"reading"`
	OriginalName string `json:"originalName"`
	Keywords     string `json:"keywords"`
	Upright      string `json:"upright"`
	Reversed     string `json:"reversed"`
}

// MajorArcana is the fixed 22-card deck used by the diagnosis result page.
var MajorArcana = []Card{
	{
		ID:           0,
		Name:         "愚者",
		Reading:      "新たな冒険の始まりを告げるカード。何にも縛られない自由な魂が、未知の道へ一歩を踏み出します。",
		OriginalName: "The Fool",
		Keywords:     "自由・冒険・無邪気さ",
		Upright:      "新しい始まり、自由な発想、可能性への飛躍",
		Reversed:     "無計画、軽率な行動、現実逃避",
	},
	{
		ID:           1,
		Name:         "魔術師",
		Reading:      "意志と技をもって現実を形づくるカード。手にした道具のすべてが、創造のための力となります。",
		OriginalName: "The Magician",
		Keywords:     "創造力・行動力・スキル",
		Upright:      "創造性の発揮、行動力、才能の開花",
		Reversed:     "力の乱用、準備不足、自信過剰",
	},
	{
		ID:           2,
		Name:         "女教皇",
		Reading:      "静けさの奥に宿る叡智のカード。語られない真実を、直感が確かに読み取っています。",
		OriginalName: "The High Priestess",
		Keywords:     "直感・知恵・内省",
		Upright:      "鋭い直感、内なる知恵、冷静な洞察",
		Reversed:     "感情の抑圧、秘密、表面的な理解",
	},
	{
		ID:           3,
		Name:         "女帝",
		Reading:      "豊かさと慈しみを象徴するカード。育てる力が、身の回りのすべてを実らせていきます。",
		OriginalName: "The Empress",
		Keywords:     "豊かさ・育成・創造性",
		Upright:      "豊穣、愛情、創造的な実り",
		Reversed:     "過保護、停滞、自己放任",
	},
	{
		ID:           4,
		Name:         "皇帝",
		Reading:      "秩序と統率の力を示すカード。揺るがぬ意志が、混沌の中に確かな構造を築きます。",
		OriginalName: "The Emperor",
		Keywords:     "権威・構造・リーダーシップ",
		Upright:      "指導力、安定した基盤、決断",
		Reversed:     "支配的、頑固さ、権力への執着",
	},
	{
		ID:           5,
		Name:         "教皇",
		Reading:      "受け継がれてきた教えと信念のカード。伝統の中にこそ、進むべき道しるべがあります。",
		OriginalName: "The Hierophant",
		Keywords:     "伝統・指導・信念",
		Upright:      "良き助言、精神的な導き、信頼",
		Reversed:     "形式主義、束縛、独善",
	},
	{
		ID:           6,
		Name:         "恋人",
		Reading:      "心が選び取る結びつきのカード。調和の中で下される選択が、未来の形を決めます。",
		OriginalName: "The Lovers",
		Keywords:     "選択・調和・関係性",
		Upright:      "深い絆、価値観の一致、正しい選択",
		Reversed:     "迷い、不調和、誘惑への敗北",
	},
	{
		ID:           7,
		Name:         "戦車",
		Reading:      "勝利へ向かって突き進む意志のカード。相反する力を御し、前進の勢いへと変えます。",
		OriginalName: "The Chariot",
		Keywords:     "意志・決断・前進",
		Upright:      "勝利、強い推進力、自己制御",
		Reversed:     "暴走、方向性の喪失、挫折",
	},
	{
		ID:           8,
		Name:         "力",
		Reading:      "猛々しい獅子を優しく鎮める、内なる強さのカード。本当の力は柔らかさの中にあります。",
		OriginalName: "Strength",
		Keywords:     "勇気・忍耐・内なる強さ",
		Upright:      "勇気、穏やかな克服、精神力",
		Reversed:     "弱気、自信喪失、感情への屈服",
	},
	{
		ID:           9,
		Name:         "隠者",
		Reading:      "灯火を掲げてひとり歩む探求者のカード。孤独の奥で、答えは静かに見つかります。",
		OriginalName: "The Hermit",
		Keywords:     "内省・探求・孤独",
		Upright:      "深い内省、真理の探求、良き導き",
		Reversed:     "孤立、閉鎖性、頑なな拒絶",
	},
	{
		ID:           10,
		Name:         "運命の輪",
		Reading:      "巡りゆく運命の転換点を示すカード。回り続ける輪の上で、好機は必ず訪れます。",
		OriginalName: "Wheel of Fortune",
		Keywords:     "変化・サイクル・運命",
		Upright:      "幸運の到来、転機、流れの好転",
		Reversed:     "不運の循環、タイミングのずれ、停滞",
	},
	{
		ID:           11,
		Name:         "正義",
		Reading:      "天秤と剣が示す、公平と均衡のカード。偏りのない目が、真実を見定めます。",
		OriginalName: "Justice",
		Keywords:     "公平・真実・バランス",
		Upright:      "公正な判断、誠実さ、因果の清算",
		Reversed:     "不公平、偏見、責任逃れ",
	},
	{
		ID:           12,
		Name:         "吊られた男",
		Reading:      "あえて動かぬことで得られる気づきのカード。視点を逆さにすれば、世界は違って見えます。",
		OriginalName: "The Hanged Man",
		Keywords:     "視点の転換・犠牲・待機",
		Upright:      "発想の転換、献身、実りある忍耐",
		Reversed:     "徒労、自己犠牲のしすぎ、こう着状態",
	},
	{
		ID:           13,
		Name:         "死神",
		Reading:      "終わりと始まりをつかさどる変容のカード。何かを手放したとき、新しい芽が生まれます。",
		OriginalName: "Death",
		Keywords:     "変容・終わりと始まり・再生",
		Upright:      "再生、古い殻からの脱皮、清算",
		Reversed:     "執着、変化への抵抗、引きずる過去",
	},
	{
		ID:           14,
		Name:         "節制",
		Reading:      "異なるものを混ぜ合わせ、調和を生む錬金のカード。ほどよさの中に安定が宿ります。",
		OriginalName: "Temperance",
		Keywords:     "バランス・調和・統合",
		Upright:      "調和、自制、穏やかな統合",
		Reversed:     "不均衡、浪費、極端な行動",
	},
	{
		ID:           15,
		Name:         "悪魔",
		Reading:      "甘い誘惑と見えない鎖のカード。縛っているものの正体に気づけば、鎖は外れます。",
		OriginalName: "The Devil",
		Keywords:     "執着・誘惑・束縛",
		Upright:      "欲望への執着、依存、誘惑",
		Reversed:     "束縛からの解放、悪循環の断絶、覚醒",
	},
	{
		ID:           16,
		Name:         "塔",
		Reading:      "積み上げたものが雷に打たれて崩れるカード。破壊の先にこそ、偽りのない土台が現れます。",
		OriginalName: "The Tower",
		Keywords:     "突然の変化・破壊・啓示",
		Upright:      "衝撃的な変化、崩壊、目覚め",
		Reversed:     "崩壊の回避、ぎりぎりの転換、恐れによる停滞",
	},
	{
		ID:           17,
		Name:         "星",
		Reading:      "闇夜に輝く希望のカード。遠くの光を信じる心が、癒やしと導きをもたらします。",
		OriginalName: "The Star",
		Keywords:     "希望・インスピレーション・癒し",
		Upright:      "希望、ひらめき、心の回復",
		Reversed:     "失望、理想の見失い、自信のなさ",
	},
	{
		ID:           18,
		Name:         "月",
		Reading:      "揺らめく水面に映る幻影のカード。不安の霧の向こうで、直感だけが道を知っています。",
		OriginalName: "The Moon",
		Keywords:     "不安・幻想・直感",
		Upright:      "揺れる心、見えない不安、鋭い直感",
		Reversed:     "霧が晴れる、誤解の解消、不安の克服",
	},
	{
		ID:           19,
		Name:         "太陽",
		Reading:      "すべてを照らす生命力のカード。曇りのない喜びが、成功への道を明るくします。",
		OriginalName: "The Sun",
		Keywords:     "成功・喜び・明瞭さ",
		Upright:      "成功、祝福、晴れやかな達成",
		Reversed:     "曇った喜び、遅れてくる成功、気力の低下",
	},
	{
		ID:           20,
		Name:         "審判",
		Reading:      "眠っていたものを呼び覚ますラッパのカード。過去が清算され、新しい役割が告げられます。",
		OriginalName: "Judgement",
		Keywords:     "覚醒・再生・呼びかけ",
		Upright:      "復活、決着、天からの呼び声",
		Reversed:     "後悔、過去へのとらわれ、聞き逃した合図",
	},
	{
		ID:           21,
		Name:         "世界",
		Reading:      "長い旅の完成を祝う締めくくりのカード。すべてが結ばれ、円はひとつに閉じられます。",
		OriginalName: "The World",
		Keywords:     "達成・完成・統合",
		Upright:      "完成、到達、大きな調和",
		Reversed:     "未完成、詰めの甘さ、次の循環への持ち越し",
	},
}
