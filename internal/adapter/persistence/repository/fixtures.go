package repository

import (
	"time"

	"yuanli_transport/internal/domain/entities"
)

func strPtr(s string) *string { return &s }

// FixtureQuotes returns the demo records seeded into an empty store so the
// admin console has something to show on first load.
func FixtureQuotes(now time.Time) []entities.Quote {
	return []entities.Quote{
		{
			ID:        "YL-20251210-735",
			Source:    entities.QuoteSourceWebsite,
			Status:    entities.QuoteStatusPending,
			CreatedAt: now,
			UpdatedAt: now,
			Customer: entities.Customer{
				Company: "XX科技有限公司",
				Name:    "王小明",
				Phone:   "0912-345-678",
				Email:   "wang@example.com",
			},
			Shipping: entities.Shipping{
				OriginCity:    "台北市",
				OriginAddress: "信義區信義路五段7號",
				DestCity:      "高雄市",
				DestAddress:   "仁武區京富路30巷13弄9號",
				CargoType:     "精密儀器",
				Weight:        "2噸",
				PickupDate:    "2025-12-15",
				PickupTime:    "上午",
				DeliveryDate:  "2025-12-16",
				DeliveryTime:  "下午",
			},
			Vehicle: entities.Vehicle{
				Type:            "氣墊車",
				IsRecommended:   false,
				SpecialRequests: []string{"尾門", "保冷保溫"},
				Notes:           "貨物價值較高,請小心搬運。",
			},
			Business: entities.Business{},
			Version:  1,
		},
		{
			ID:        "YL-20251210-621",
			Source:    entities.QuoteSourceAIEmail,
			Status:    entities.QuoteStatusQuoted,
			CreatedAt: now.Add(-24 * time.Hour),
			UpdatedAt: now.Add(-23 * time.Hour),
			Customer: entities.Customer{
				Company: "OO物流股份有限公司",
				Name:    "李美華",
				Phone:   "0923-456-789",
				Email:   "lee@example.com",
			},
			Shipping: entities.Shipping{
				OriginCity:    "台中市",
				OriginAddress: "西屯區台灣大道三段",
				DestCity:      "台南市",
				DestAddress:   "永康區中正北路",
				CargoType:     "一般貨物",
				Weight:        "5噸",
				PickupDate:    "2025-12-12",
				PickupTime:    "下午",
				DeliveryDate:  "2025-12-13",
				DeliveryTime:  "上午",
			},
			Vehicle: entities.Vehicle{
				Type:            "讓業務推薦",
				IsRecommended:   true,
				SpecialRequests: []string{},
			},
			Business: entities.Business{
				Price:   strPtr("8500"),
				Handler: strPtr("陳經理"),
			},
			Version: 1,
		},
		{
			ID:        "YL-20251209-458",
			Source:    entities.QuoteSourceWebsite,
			Status:    entities.QuoteStatusCompleted,
			CreatedAt: now.Add(-48 * time.Hour),
			UpdatedAt: now.Add(-28 * time.Hour),
			Customer: entities.Customer{
				Company: "△△製造有限公司",
				Name:    "陳大明",
				Phone:   "0933-111-222",
				Email:   "chen@example.com",
			},
			Shipping: entities.Shipping{
				OriginCity:    "桃園市",
				OriginAddress: "龜山區文化一路",
				DestCity:      "高雄市",
				DestAddress:   "小港區中鋼路",
				CargoType:     "機械設備",
				Weight:        "8噸",
				PickupDate:    "2025-12-08",
				PickupTime:    "上午",
				DeliveryDate:  "2025-12-08",
				DeliveryTime:  "下午",
			},
			Vehicle: entities.Vehicle{
				Type:            "8噸貨車",
				IsRecommended:   true,
				SpecialRequests: []string{"堆高機"},
				Notes:           "急件",
			},
			Business: entities.Business{
				Price:   strPtr("12000"),
				Handler: strPtr("林專員"),
			},
			Version: 1,
		},
	}
}

// FixtureEmails returns the inbound mailbox the triage view starts with.
func FixtureEmails(now time.Time) []entities.InboundEmail {
	return []entities.InboundEmail{
		{
			ID:         "em-001",
			From:       "manager.lin@screwmaker.com.tw",
			SenderName: "林經理",
			Subject:    "Re: 美國訂單出貨問題 - 需報價",
			Preview:    "源利您好, 我們收到美國客戶的訂單了,需要你們幫忙報價運送到高雄港...",
			ReceivedAt: now.Add(-3 * time.Hour),
			Status:     entities.EmailStatusUnread,
			Content: `From: 林經理 <manager.lin@screwmaker.com.tw>
To: 源利交通 <service@yuanli-transport.com.tw>
Subject: Re: 美國訂單出貨問題

源利您好,

我們收到美國客戶的訂單了,需要你們幫忙報價運送到高雄港。

貨物明細:
- 螺絲成品 24 箱,每箱約 500 公斤
- 共 12 個棧板,總重約 12 噸
- 出口貨物,需要配合報關行時程

希望下週一早上到廠取貨,當天下午要進高雄港倉庫。

聯絡人: 林經理
Mobile: 0923-456-789`,
		},
		{
			ID:         "em-002",
			From:       "procurement@precisiontech.com.tw",
			SenderName: "張採購",
			Subject:    "精密設備運送詢價",
			Preview:    "您好,我們有一批精密檢測設備要從新竹運到台南科學園區,設備怕震...",
			ReceivedAt: now.Add(-26 * time.Hour),
			Status:     entities.EmailStatusUnread,
			Content: `From: 張採購 <procurement@precisiontech.com.tw>
To: service@yuanli-transport.com.tw
Subject: 精密設備運送詢價

您好,

我們有一批精密檢測設備要從新竹運到台南科學園區,設備怕震,
聽說貴公司有氣墊車,想請你們報價。

- 檢測儀器 3 台,單台約 800 公斤,木箱包裝
- 希望這週四取貨,週五早上送達
- 卸貨現場有堆高機

請回覆報價,謝謝。

張採購 03-5678-123`,
		},
		{
			ID:         "em-003",
			From:       "chen.manager@exhibition-design.com",
			SenderName: "陳經理",
			Subject:    "急件!下週高雄展覽的器材運送",
			Preview:    "源利你好, 我們下週在高雄有個重要展覽,需要運器材過去,時間很趕! 要運的東西...",
			ReceivedAt: now.Add(-44 * time.Hour),
			Status:     entities.EmailStatusUnread,
			Content: `From: 陳經理 <chen.manager@exhibition-design.com>
To: service@yuanli-transport.com.tw
Subject: 急件!下週高雄展覽的器材運送

源利你好,

我們下週在高雄有個重要展覽,需要運器材過去,時間很趕!

要運的東西:
1. 大型展示櫃 × 8 座
   - 每座尺寸: 2m (寬) × 1m (深) × 2.5m (高)
2. 燈光設備 2 箱

下週二一定要到高雄展覽館,麻煩盡快報價!

陳經理 0910-222-333`,
		},
	}
}
