package catalog

// TypeDetail holds the authored profile for one personality type.
type TypeDetail struct {
	Code            string   `json:"code"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Characteristics []string `json:"characteristics"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Advice          string   `json:"advice"`
	TopCareers      []string `json:"topCareers"`
}

// TypeDetails maps every classifiable code, including the compound ENTJ-A,
// to its profile.
var TypeDetails = map[string]TypeDetail{
	"ESTJ": {
		Code:            "ESTJ",
		Name:            "執行官",
		Title:           "秩序の守護者",
		Description:     "責任感が強く、組織を統率する能力に優れる。現実的で効率的な方法を好み、伝統を重んじる。",
		Characteristics: []string{"リーダーシップ", "実践的", "組織的", "責任感"},
		Strengths:       []string{"決断力がある", "信頼できる", "効率的に物事を進める"},
		Weaknesses:      []string{"柔軟性に欠ける", "感情面での配慮が不足しがち"},
		Advice:          "時には直感や感情にも耳を傾け、柔軟な対応を心がけよう。",
		TopCareers:      []string{"経営管理職", "公務員", "銀行員", "警察官", "プロジェクトマネージャー", "会計士", "学校長", "生産管理", "不動産営業", "物流管理"},
	},
	"ENTJ": {
		Code:            "ENTJ",
		Name:            "指揮官",
		Title:           "戦略の王者",
		Description:     "生まれながらのリーダー。長期的なビジョンを持ち、目標達成に向けて戦略的に行動する。",
		Characteristics: []string{"戦略的思考", "リーダーシップ", "決断力", "効率重視"},
		Strengths:       []string{"ビジョンを持つ", "効率的", "自信がある"},
		Weaknesses:      []string{"他者の感情を軽視しがち", "批判的すぎる"},
		Advice:          "チームメンバーの感情にも配慮し、協力的なアプローチを取ろう。",
		TopCareers:      []string{"経営者", "経営コンサルタント", "投資銀行家", "起業家", "弁護士", "事業開発", "政治家", "プロダクトマネージャー", "営業部長", "戦略企画"},
	},
	"ESFJ": {
		Code:            "ESFJ",
		Name:            "領事官",
		Title:           "調和の紡ぎ手",
		Description:     "社交的で思いやりがあり、他者のニーズに敏感。調和のとれた環境を作ることに喜びを感じる。",
		Characteristics: []string{"思いやり", "協調性", "責任感", "社交的"},
		Strengths:       []string{"他者をサポートする", "組織的", "忠実"},
		Weaknesses:      []string{"批判に敏感", "自己犠牲的になりがち"},
		Advice:          "自分のニーズも大切にし、時には断る勇気を持とう。",
		TopCareers:      []string{"看護師", "小学校教員", "人事", "秘書", "ウェディングプランナー", "受付", "介護福祉士", "栄養士", "ホテルスタッフ", "販売員"},
	},
	"ENFJ": {
		Code:            "ENFJ",
		Name:            "主人公",
		Title:           "導きの光",
		Description:     "カリスマ性があり、他者を鼓舞する能力に優れる。理想主義的で、人々の成長を支援することに情熱を注ぐ。",
		Characteristics: []string{"カリスマ性", "共感力", "理想主義", "インスピレーション"},
		Strengths:       []string{"人を動かす", "共感的", "ビジョンを持つ"},
		Weaknesses:      []string{"過度に理想主義的", "自己批判的"},
		Advice:          "完璧を求めすぎず、現実的な目標設定を心がけよう。",
		TopCareers:      []string{"教師", "研修講師", "キャリアカウンセラー", "広報", "人材コーディネーター", "NPO職員", "アナウンサー", "コーチ", "採用担当", "イベントプランナー"},
	},
	"ISTJ": {
		Code:            "ISTJ",
		Name:            "管理者",
		Title:           "沈黙の守護者",
		Description:     "信頼性が高く、責任感が強い。詳細に注意を払い、確立された方法を尊重する。",
		Characteristics: []string{"信頼性", "実務的", "責任感", "論理的"},
		Strengths:       []string{"信頼できる", "組織的", "忠実"},
		Weaknesses:      []string{"変化に抵抗しがち", "感情表現が苦手"},
		Advice:          "新しいアイデアにも目を向け、感情を表現することも試してみよう。",
		TopCareers:      []string{"会計士", "税理士", "品質管理", "法務", "図書館司書", "薬剤師", "システム監査", "経理", "行政書士", "検査技師"},
	},
	"INTJ": {
		Code:            "INTJ",
		Name:            "建築家",
		Title:           "孤高の戦略家",
		Description:     "独立心が強く、創造的な問題解決者。長期的な計画を立て、複雑な問題に取り組むことを好む。",
		Characteristics: []string{"戦略的", "独立心", "分析的", "創造的"},
		Strengths:       []string{"戦略的思考", "独創的", "決断力がある"},
		Weaknesses:      []string{"他者の感情を軽視しがち", "頑固"},
		Advice:          "他者の視点も考慮し、協力することの価値を認識しよう。",
		TopCareers:      []string{"研究者", "ソフトウェアアーキテクト", "データサイエンティスト", "戦略コンサルタント", "投資アナリスト", "建築家", "大学教授", "発明家", "アクチュアリー", "エンジニア"},
	},
	"ISFJ": {
		Code:            "ISFJ",
		Name:            "擁護者",
		Title:           "静かなる献身者",
		Description:     "思いやりがあり、献身的。他者のニーズに敏感で、安定と調和を重視する。",
		Characteristics: []string{"思いやり", "献身的", "責任感", "忠実"},
		Strengths:       []string{"サポート力がある", "信頼できる", "細やかな配慮"},
		Weaknesses:      []string{"自己主張が弱い", "変化に抵抗しがち"},
		Advice:          "自分の意見も大切にし、時には変化を受け入れよう。",
		TopCareers:      []string{"看護師", "保育士", "医療事務", "歯科衛生士", "総務", "学校事務", "ソーシャルワーカー", "管理栄養士", "司書", "カスタマーサポート"},
	},
	"INFJ": {
		Code:            "INFJ",
		Name:            "提唱者",
		Title:           "神秘の賢者",
		Description:     "理想主義的で洞察力に優れる。深い共感力を持ち、他者の成長を支援することに情熱を注ぐ。",
		Characteristics: []string{"洞察力", "理想主義", "共感力", "創造的"},
		Strengths:       []string{"深い洞察力", "共感的", "ビジョンを持つ"},
		Weaknesses:      []string{"完璧主義", "燃え尽きやすい"},
		Advice:          "自分を大切にし、現実的な期待値を設定しよう。",
		TopCareers:      []string{"カウンセラー", "臨床心理士", "作家", "編集者", "セラピスト", "大学研究員", "NPO運営", "キャリアアドバイザー", "人事企画", "翻訳家"},
	},
	"ESTP": {
		Code:            "ESTP",
		Name:            "起業家",
		Title:           "瞬間の支配者",
		Description:     "エネルギッシュで行動的。リスクを恐れず、現在の瞬間を最大限に楽しむ。",
		Characteristics: []string{"行動力", "柔軟性", "実践的", "社交的"},
		Strengths:       []string{"適応力がある", "問題解決が早い", "エネルギッシュ"},
		Weaknesses:      []string{"衝動的", "長期計画が苦手"},
		Advice:          "長期的な視点も持ち、計画性を養おう。",
		TopCareers:      []string{"営業", "トレーダー", "起業家", "救急救命士", "スポーツインストラクター", "不動産仲介", "イベント運営", "パイロット", "警備", "バイヤー"},
	},
	"ENTP": {
		Code:            "ENTP",
		Name:            "討論者",
		Title:           "知の挑戦者",
		Description:     "知的好奇心が旺盛で、議論を楽しむ。創造的な問題解決者で、新しいアイデアを探求する。",
		Characteristics: []string{"知的", "創造的", "議論好き", "柔軟性"},
		Strengths:       []string{"創造的", "適応力がある", "知的刺激を与える"},
		Weaknesses:      []string{"議論好きすぎる", "細部を見落としがち"},
		Advice:          "実行に移すことも大切。細部にも注意を払おう。",
		TopCareers:      []string{"起業家", "企画職", "マーケター", "弁護士", "コピーライター", "ジャーナリスト", "プロデューサー", "コンサルタント", "研究開発", "ベンチャーキャピタリスト"},
	},
	"ESFP": {
		Code:            "ESFP",
		Name:            "エンターテイナー",
		Title:           "歓喜の使者",
		Description:     "社交的で楽観的。周囲を楽しませることが得意で、現在を全力で楽しむ。",
		Characteristics: []string{"社交的", "楽観的", "自由奔放", "親しみやすい"},
		Strengths:       []string{"人を楽しませる", "適応力がある", "ポジティブ"},
		Weaknesses:      []string{"計画性に欠ける", "批判に敏感"},
		Advice:          "将来のことも考え、時には計画を立てることも大切。",
		TopCareers:      []string{"俳優", "歌手", "美容師", "ツアーコンダクター", "販売員", "イベントスタッフ", "保育士", "フィットネストレーナー", "ホテルコンシェルジュ", "タレント"},
	},
	"ENFP": {
		Code:            "ENFP",
		Name:            "運動家",
		Title:           "自由なる魂",
		Description:     "熱意があり、創造的。人々とのつながりを大切にし、新しい可能性を探求する。",
		Characteristics: []string{"熱意", "創造的", "社交的", "理想主義"},
		Strengths:       []string{"熱意がある", "インスピレーションを与える", "柔軟"},
		Weaknesses:      []string{"集中力が続かない", "現実的でないことがある"},
		Advice:          "一つのことに集中し、現実的な目標設定をしよう。",
		TopCareers:      []string{"クリエイティブディレクター", "広告プランナー", "ライター", "カウンセラー", "俳優", "起業家", "デザイナー", "広報", "キャリアコーチ", "旅行プランナー"},
	},
	"ISTP": {
		Code:            "ISTP",
		Name:            "巨匠",
		Title:           "静かなる職人",
		Description:     "実践的で論理的。手を動かして問題を解決することを好み、独立心が強い。",
		Characteristics: []string{"実践的", "論理的", "独立心", "柔軟性"},
		Strengths:       []string{"問題解決能力", "冷静", "適応力がある"},
		Weaknesses:      []string{"感情表現が苦手", "コミットメントを避けがち"},
		Advice:          "感情も大切にし、長期的なコミットメントの価値を認識しよう。",
		TopCareers:      []string{"整備士", "エンジニア", "パイロット", "職人", "電気工事士", "プログラマー", "消防士", "カメラマン", "測量士", "機械設計"},
	},
	"INTP": {
		Code:            "INTP",
		Name:            "論理学者",
		Title:           "思考の迷宮",
		Description:     "論理的で分析的。複雑な問題を解くことに喜びを感じ、知的探求を楽しむ。",
		Characteristics: []string{"論理的", "分析的", "独立心", "知的好奇心"},
		Strengths:       []string{"分析力がある", "創造的", "客観的"},
		Weaknesses:      []string{"社交性に欠ける", "完璧主義"},
		Advice:          "実行に移すことも大切。社交性を養おう。",
		TopCareers:      []string{"研究者", "プログラマー", "数学者", "データアナリスト", "哲学者", "ゲーム開発者", "セキュリティエンジニア", "大学教員", "特許技術者", "統計家"},
	},
	"ISFP": {
		Code:            "ISFP",
		Name:            "冒険家",
		Title:           "静かなる芸術家",
		Description:     "芸術的で感性豊か。自分の価値観を大切にし、調和を求める。",
		Characteristics: []string{"芸術的", "感性豊か", "柔軟性", "思いやり"},
		Strengths:       []string{"創造的", "思いやりがある", "柔軟"},
		Weaknesses:      []string{"自己主張が弱い", "計画性に欠ける"},
		Advice:          "自分の意見を表現し、時には計画を立てることも大切。",
		TopCareers:      []string{"デザイナー", "イラストレーター", "フラワーコーディネーター", "美容師", "パティシエ", "写真家", "音楽家", "獣医看護師", "雑貨店スタッフ", "庭師"},
	},
	"INFP": {
		Code:            "INFP",
		Name:            "仲介者",
		Title:           "夢見る理想家",
		Description:     "理想主義的で創造的。自分の価値観を大切にし、真実と調和を追求する。",
		Characteristics: []string{"理想主義", "創造的", "共感力", "価値観重視"},
		Strengths:       []string{"共感的", "創造的", "誠実"},
		Weaknesses:      []string{"現実逃避しがち", "自己批判的"},
		Advice:          "現実も受け入れ、自分に優しくしよう。",
		TopCareers:      []string{"作家", "詩人", "翻訳家", "カウンセラー", "司書", "イラストレーター", "音楽家", "編集者", "福祉職", "大学院研究者"},
	},
	"ENTJ-A": {
		Code:            "ENTJ-A",
		Name:            "皇帝",
		Title:           "絶対なる統率者",
		Description:     "強力なリーダーシップと明確なビジョンを持つ。目標達成のために戦略的かつ果敢に行動する。",
		Characteristics: []string{"強力なリーダーシップ", "戦略的思考", "決断力", "自信"},
		Strengths:       []string{"ビジョンを実現する", "効率的", "カリスマ性"},
		Weaknesses:      []string{"独裁的になりがち", "他者の意見を軽視"},
		Advice:          "協力とチームワークの価値を認識し、柔軟性を持とう。",
		TopCareers:      []string{"CEO", "取締役", "投資家", "事業本部長", "政治家", "経営コンサルタント", "起業家", "M&Aアドバイザー", "官僚", "プロスポーツ監督"},
	},
}
