package wedding

// defaultDocument is the built-in configuration every resolution starts from.
// It must stay complete: the merge step leans on it to fill any field or
// language tag an override leaves out.
var defaultDocument = Document{
	GroomName: LocalizedString{EN: "Groom", JA: "アモーレ", MY: "အမိုးရေး"},
	BrideName: LocalizedString{EN: "Bride", JA: "メイ", MY: "မေ"},
	Date:          "2025-05-10T10:00:00",
	ShowCountdown: true,
	RSVPDeadline:  "2025-04-05",
	Location: Location{
		Name:    LocalizedString{EN: "Akasaka Area", JA: "赤坂エリア", MY: "Akasaka Area"},
		Address: LocalizedString{EN: "Minato City, Tokyo", JA: "東京都港区", MY: "Minato City, Tokyo"},
		MapURL:  "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3241.188171022485!2d139.7378566!3d35.6723684!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x60188ba8ca2d0af5%3A0xf2758ef7523e5876!2z44Oe44Oq44O844Kw44Op44Oz6LWk5Z2C!5e0!3m2!1sja!2sjp!4v1766155742095!5m2!1sja!2sjp",
	},
	Message: LocalizedString{
		EN: "We invite you to share in our joy as we exchange marriage vows.",
		JA: "このたび 私たちは結婚することになりました\n皆様に見守られながら 新しい人生の第一歩を踏み出したいと存じます",
		MY: "ကျွန်ုပ်တို့၏ မင်္ဂလာပွဲသို့ ကြွရောက်ချီးမြှင့်ပါရန် ဖိတ်ကြားအပ်ပါသည်။",
	},
	GoogleFormURL:   "",
	GoogleScriptURL: "PASTE_YOUR_GOOGLE_SCRIPT_URL_HERE",
	ShowSchedule:    true,
	Schedule: []ScheduleItem{
		{Time: "10:30", Title: LocalizedString{EN: "Registration", JA: "受付開始", MY: "ဧည့်ခံခြင်း"}, Icon: IconReception},
		{Time: "11:00", Title: LocalizedString{EN: "Grand Entrance", JA: "開宴・新郎新婦入場", MY: "မင်္ဂလာဧည့်ခံပွဲ စတင်ခြင်း"}, Icon: IconParty},
		{Time: "11:15", Title: LocalizedString{EN: "Toast", JA: "乾杯", MY: "မင်္ဂလာစကားပြောကြားခြင်း"}, Icon: IconToast},
		{Time: "11:30", Title: LocalizedString{EN: "Meal & Conversation", JA: "お食事歓談", MY: "ဧည့်ခံကျွေးမွေးခြင်း"}, Icon: IconMeal},
		{Time: "12:00", Title: LocalizedString{EN: "Photo Session", JA: "フォトラウンド", MY: "အမှတ်တရဓာတ်ပုံရိုက်ကူးခြင်း"}, Icon: IconCamera},
		{Time: "12:15", Title: LocalizedString{EN: "Games & Entertainment", JA: "余興・ゲーム", MY: "ဖျော်ဖြေရေး အစီအစဉ်များ"}, Icon: IconParty},
		{Time: "13:00", Title: LocalizedString{EN: "Conclusion & Send-off", JA: "お披楽喜・送賓", MY: "ဧည့်ခံပွဲ ပြီးဆုံးခြင်း"}, Icon: IconReception},
	},
	FAQ: []FAQItem{
		{
			Question: LocalizedString{EN: "Can I bring a +1?", JA: "同伴者を連れて行ってもいいですか？", MY: "ဧည့်သည်အပို ခေါ်လာလို့ရပါသလား?"},
			Answer: LocalizedString{
				EN: "We kindly ask that only those who received this invitation attend. If you are bringing a plus one, please register them in the RSVP form so we can arrange for you to be seated together.",
				JA: "お席の都合上、ご招待申し上げた方のみのご出席をお願いしております。お連れ様がいらっしゃる場合は、お席を隣同士でご用意いたしますので、RSVPフォームにてお知らせください。",
				MY: "နေရာထိုင်ခင်း အခက်အခဲရှိပါသဖြင့် ဖိတ်ကြားထားသူများသာ တက်ရောက်ပေးပါရန် မေတ္တာရပ်ခံပါသည်။ အဖော်ခေါ်လာမည်ဆိုပါက နေရာအတူတကွစီစဉ်နိုင်ရန် RSVP တွင် ဖြည့်စွက်ပေးပါ။",
			},
			Icon: FAQUsers,
		},
		{
			Question: LocalizedString{EN: "What should I wear?", JA: "服装の指定はありますか？", MY: "ဘာဝတ်ဆင်ရမလဲ?"},
			Answer: LocalizedString{
				EN: "Formal attire is requested.",
				JA: "フォーマルな服装でお越しください。",
				MY: "Formal ဝတ်စုံ ဝတ်ဆင်ပေးပါရန် မေတ္တာရပ်ခံပါသည်။",
			},
			Icon: FAQShirt,
		},
		{
			Question: LocalizedString{EN: "What time should I arrive?", JA: "何時に到着すればいいですか？", MY: "ဘယ်အချိန်အရောက်လာရမလဲ?"},
			Answer: LocalizedString{
				EN: "The ceremony begins at {{time}}. Please arrive 20 minutes early.",
				JA: "挙式は{{time}}に始まります。20分前にはお越しください。",
				MY: "မင်္ဂလာပွဲသည် {{time}} တွင် စတင်မည်ဖြစ်ပါသဖြင့် မိနစ် ၂၀ ကြိုတင်ရောက်ရှိပေးပါ။",
			},
			Icon: FAQClock,
		},
		{
			Question: LocalizedString{EN: "Is parking available?", JA: "駐車場はありますか？", MY: "ကားပါကင်ရှိပါသလား?"},
			Answer: LocalizedString{
				EN: "Unfortunately, parking is not available at the venue. Please use nearby public parking.",
				JA: "申し訳ございませんが、会場に専用駐車場はございません。近隣のコインパーキングをご利用ください。",
				MY: "ကားပါကင်မရှိပါ။ ကျေးဇူးပြု၍ အနီးနားရှိ အခပေးကားပါကင်ကို အသုံးပြုပါ။",
			},
			Icon: FAQMap,
		},
		{
			Question: LocalizedString{EN: "I have a dietary restriction.", JA: "アレルギーがあります。", MY: "မတည့်သည့် အစားအသောက်များ ရှိပါက?"},
			Answer: LocalizedString{
				EN: "Please let us know when you RSVP so we can accommodate your needs.",
				JA: "RSVPフォームにてお知らせください。対応させていただきます。",
				MY: "ကျေးဇူးပြု၍ RSVP ပုံစံတွင် ဖြည့်စွက်ဖော်ပြပေးပါ။",
			},
			Icon: FAQUtensils,
		},
		{
			Question: LocalizedString{EN: "What is the deadline to RSVP?", JA: "返信期限はいつですか？", MY: "ဘယ်တော့နောက်ဆုံး အကြောင်းပြန်ရမလဲ?"},
			Answer: LocalizedString{
				EN: "Please RSVP by {{deadline}}.",
				JA: "{{deadline}}までにご返信をお願いいたします。",
				MY: "{{deadline}} နောက်ဆုံးထား၍ အကြောင်းပြန်ပေးပါ။",
			},
			Icon: FAQCalendar,
		},
	},
	ShowGallery: true,
	Gallery: []string{
		"https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1511285560982-1351cdeb9821?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1520854221256-17451cc330e7?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1522673607200-1645062cd495?auto=format&fit=crop&q=80&w=800",
	},
	MusicURL: "",
	Images: Images{
		Hero:  "https://picsum.photos/1920/1080?random=1",
		Groom: "https://picsum.photos/400/500?random=2",
		Bride: "https://picsum.photos/400/500?random=3",
	},
	Theme: Theme{
		Primary:        "#C5A059",
		Text:           "#4A4A4A",
		BackgroundTint: "#F5F0E6",
	},
	Fonts: FontConfig{
		EN: `"Cormorant Garamond"`,
		JA: `"Shippori Mincho"`,
		MY: `"Padauk"`,
	},
	Visuals: Visuals{
		EnableAnimations: true,
		EnableEnvelope:   true,
	},
}

// Defaults returns a copy of the built-in default document.
func Defaults() Document {
	return defaultDocument.Clone()
}
