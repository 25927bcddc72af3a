package catalog

import "github.com/miyakoshi/septade/internal/diagnosis"

// Questions is the fixed 100-question Likert bank, 25 questions per axis.
// Answers are given on a 1..7 scale. Reversed questions are phrased from the
// negative pole so that agreement pulls the score toward I, N, F or P.
var Questions = []diagnosis.Question{
	{ID: 1, Text: "初対面の人とでもすぐに打ち解けて話せる。", Axis: diagnosis.AxisE},
	{ID: 2, Text: "物事を判断するときは、まず具体的な事実を確かめる。", Axis: diagnosis.AxisS},
	{ID: 3, Text: "結論を出すときは、感情よりも筋道を優先する。", Axis: diagnosis.AxisT},
	{ID: 4, Text: "旅行の前には日程を細かく決めておきたい。", Axis: diagnosis.AxisJ},
	{ID: 5, Text: "大人数の集まりが終わると、どっと疲れを感じる。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 6, Text: "説明を聞くより、まず全体のイメージをつかみたい。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 7, Text: "相手の気持ちを傷つけないことを何より大切にしている。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 8, Text: "予定を決めずに、その日の気分で動くほうが楽しい。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 9, Text: "パーティーでは自分から話しかけるほうだ。", Axis: diagnosis.AxisE},
	{ID: 10, Text: "手順書やマニュアルに沿って作業するのが得意だ。", Axis: diagnosis.AxisS},
	{ID: 11, Text: "議論では正しさを曲げないことが誠実さだと思う。", Axis: diagnosis.AxisT},
	{ID: 12, Text: "締め切りよりかなり前に作業を終わらせるほうだ。", Axis: diagnosis.AxisJ},
	{ID: 13, Text: "休日はひとりで静かに過ごすのが一番の充電になる。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 14, Text: "「もしも」の話を空想するのが好きだ。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 15, Text: "決断のときは、関係者の気持ちがどう動くかを先に考える。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 16, Text: "選択肢はぎりぎりまで残しておきたい。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 17, Text: "その場の思いつきで人を誘うことがよくある。", Axis: diagnosis.AxisE},
	{ID: 18, Text: "抽象的な理論より、実際に役立つ知識に惹かれる。", Axis: diagnosis.AxisS},
	{ID: 19, Text: "批判をするときも、事実に基づいていれば遠慮はいらない。", Axis: diagnosis.AxisT},
	{ID: 20, Text: "部屋や机の上は、いつも決まった場所に物がある。", Axis: diagnosis.AxisJ},
	{ID: 21, Text: "電話よりメッセージで済ませたいと思うことが多い。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 22, Text: "会話の最中でも、つい別の可能性を考え始めてしまう。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 23, Text: "正論だとわかっていても、言い方がきつい人は苦手だ。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 24, Text: "計画が変わっても、あまり気にならない。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 25, Text: "にぎやかな場所にいると元気が湧いてくる。", Axis: diagnosis.AxisE},
	{ID: 26, Text: "過去にうまくいった方法を繰り返すほうが安心だ。", Axis: diagnosis.AxisS},
	{ID: 27, Text: "物事の良し悪しは、損得を数字で比べて決めたい。", Axis: diagnosis.AxisT},
	{ID: 28, Text: "やることリストを作って、消していくのが好きだ。", Axis: diagnosis.AxisJ},
	{ID: 29, Text: "話す前に、頭の中で言葉を整理してからでないと落ち着かない。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 30, Text: "目の前の細部より、その先にある意味を考えてしまう。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 31, Text: "泣いている人を見ると、理由を聞く前に胸が痛む。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 32, Text: "旅先では予定外の寄り道こそが醍醐味だと思う。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 33, Text: "グループの中では自然と進行役になることが多い。", Axis: diagnosis.AxisE},
	{ID: 34, Text: "新しい機械は、説明書を読みながら順番に覚えたい。", Axis: diagnosis.AxisS},
	{ID: 35, Text: "公平であるためには、例外を認めすぎないほうがよい。", Axis: diagnosis.AxisT},
	{ID: 36, Text: "約束の時間には余裕をもって到着するようにしている。", Axis: diagnosis.AxisJ},
	{ID: 37, Text: "大勢の前で注目されると、できれば逃げ出したくなる。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 38, Text: "現実の出来事より、アイデアの世界のほうが居心地がよい。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 39, Text: "議論に勝つことより、その場の空気を守ることを選ぶ。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 40, Text: "締め切り直前の追い込みのほうが力が出る。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 41, Text: "知らない人の輪にも、ためらわずに入っていける。", Axis: diagnosis.AxisE},
	{ID: 42, Text: "話をするときは、具体的な例を挙げないと伝わらないと思う。", Axis: diagnosis.AxisS},
	{ID: 43, Text: "人間関係のトラブルも、原因を分析すれば解決できると思う。", Axis: diagnosis.AxisT},
	{ID: 44, Text: "一度始めたことは、途中で投げ出さずに最後までやり遂げたい。", Axis: diagnosis.AxisJ},
	{ID: 45, Text: "長い会議のあとは、ひとりになれる時間が必要だ。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 46, Text: "物語の結末を、自分なりに想像して楽しむことがある。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 47, Text: "褒め言葉をかけるタイミングにはいつも気を配っている。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 48, Text: "急な誘いにも、たいてい喜んで乗るほうだ。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 49, Text: "考えごとは、誰かに話しながらのほうがまとまる。", Axis: diagnosis.AxisE},
	{ID: 50, Text: "今ここで起きていることに集中するのが得意だ。", Axis: diagnosis.AxisS},
	{ID: 51, Text: "ルールは気持ちに左右されず、全員に同じく適用すべきだ。", Axis: diagnosis.AxisT},
	{ID: 52, Text: "買い物は事前にリストを作ってから出かける。", Axis: diagnosis.AxisJ},
	{ID: 53, Text: "知り合いが多い場より、親しい数人との時間を選ぶ。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 54, Text: "説明のない飛躍したアイデアに、むしろわくわくする。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 55, Text: "効率より、みんなが納得しているかどうかが気になる。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 56, Text: "片付けは気が向いたときにまとめてやればよいと思う。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 57, Text: "初めての場所でも、店員や通行人に気軽に話しかけられる。", Axis: diagnosis.AxisE},
	{ID: 58, Text: "夢物語よりも、手で触れられる成果がほしい。", Axis: diagnosis.AxisS},
	{ID: 59, Text: "感情的になっている人には、まず事実関係を確認したくなる。", Axis: diagnosis.AxisT},
	{ID: 60, Text: "一日の始まりに、その日の段取りを頭の中で組み立てる。", Axis: diagnosis.AxisJ},
	{ID: 61, Text: "雑談が続くと、早く切り上げたいと感じることがある。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 62, Text: "同じ作業の繰り返しは、すぐに飽きてしまう。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 63, Text: "チームの和のためなら、自分の意見を引っ込めることもある。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 64, Text: "仕事のやり方は、始めてから考えるほうが性に合っている。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 65, Text: "週末はできるだけ誰かと会う予定を入れたい。", Axis: diagnosis.AxisE},
	{ID: 66, Text: "「普通はこうする」という常識を大事にしている。", Axis: diagnosis.AxisS},
	{ID: 67, Text: "お世辞よりも、率直な指摘をもらえるほうがありがたい。", Axis: diagnosis.AxisT},
	{ID: 68, Text: "提出物の期限を破った記憶がほとんどない。", Axis: diagnosis.AxisJ},
	{ID: 69, Text: "自分の気持ちは、口に出すより書くほうが表現しやすい。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 70, Text: "新しい理論や思想の話になると、時間を忘れてしまう。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 71, Text: "正しさを主張するより、相手に寄り添うほうが先だと思う。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 72, Text: "一つの予定が崩れても、その場で組み替えればよいと思う。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 73, Text: "初めてのグループでも、すぐに誰とでも協力できる。", Axis: diagnosis.AxisE},
	{ID: 74, Text: "データや実績のない提案は、まず疑ってかかる。", Axis: diagnosis.AxisS},
	{ID: 75, Text: "映画やドラマより、事実を扱ったドキュメンタリーを好む。", Axis: diagnosis.AxisT},
	{ID: 76, Text: "長期の目標を立てて、逆算して今日やることを決める。", Axis: diagnosis.AxisJ},
	{ID: 77, Text: "にぎやかな歓迎会より、静かな食事会のほうが好きだ。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 78, Text: "ひらめきが降りてくる瞬間を何より信じている。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 79, Text: "頼みごとを断るとき、必要以上に申し訳なくなる。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 80, Text: "決まりきった日課より、毎日違う流れのほうが心地よい。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 81, Text: "初対面の集まりのあとも、疲れよりも高揚感が残る。", Axis: diagnosis.AxisE},
	{ID: 82, Text: "料理は計量して、レシピどおりに作るほうだ。", Axis: diagnosis.AxisS},
	{ID: 83, Text: "どちらが正しいかはっきりさせないと、もやもやが残る。", Axis: diagnosis.AxisT},
	{ID: 84, Text: "身の回りの手続きや書類は、後回しにせずすぐ片付ける。", Axis: diagnosis.AxisJ},
	{ID: 85, Text: "話し上手というより聞き役に回ることが多い。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 86, Text: "地図を覚えるより、方向の勘で歩くほうが楽しい。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 87, Text: "贈り物を選ぶときは、相手の表情を想像して時間をかける。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 88, Text: "「とりあえずやってみる」が口ぐせになっている。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 89, Text: "自己紹介やスピーチを頼まれても、あまり緊張しない。", Axis: diagnosis.AxisE},
	{ID: 90, Text: "五感で確かめられるものだけを信じたい。", Axis: diagnosis.AxisS},
	{ID: 91, Text: "感謝や謝罪も、言葉より行動で示すべきだと思う。", Axis: diagnosis.AxisT},
	{ID: 92, Text: "予定表やカレンダーが埋まっていると安心する。", Axis: diagnosis.AxisJ},
	{ID: 93, Text: "騒がしい職場より、静かな作業環境で力を発揮できる。", Axis: diagnosis.AxisE, Reversed: true},
	{ID: 94, Text: "未来の可能性の話をしているときが一番生き生きする。", Axis: diagnosis.AxisS, Reversed: true},
	{ID: 95, Text: "成果よりも、その過程で人がどう感じたかを重視する。", Axis: diagnosis.AxisT, Reversed: true},
	{ID: 96, Text: "予定のない休日ほど、よい休日だと思う。", Axis: diagnosis.AxisJ, Reversed: true},
	{ID: 97, Text: "思ったことはためらわず、その場で口にするほうだ。", Axis: diagnosis.AxisE},
	{ID: 98, Text: "仕事では前例や実績のあるやり方を第一に選ぶ。", Axis: diagnosis.AxisS},
	{ID: 99, Text: "判断に迷ったら、長所と短所を書き出して比較する。", Axis: diagnosis.AxisT},
	{ID: 100, Text: "物事は始める前に、終わりまでの見通しを立てておきたい。", Axis: diagnosis.AxisJ},
}
