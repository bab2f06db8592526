package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"digimarket/config"
	"digimarket/models"

	"github.com/go-resty/resty/v2"
)

// catalogContextCap limits how much of the catalog is sent with each
// assistant request.
const catalogContextCap = 100

const consultantInstruction = `
Anda adalah "Konsultan Keberhasilan Siswa & Pembelajaran" di DigiMarket.
Misi Anda adalah memberdayakan siswa dan pembelajar seumur hidup dengan merekomendasikan alat digital yang tepat dari katalog kami.

Konteks Katalog (Sampel):
%s

Panduan Penting:
1. Bersikaplah empatik, menyemangati, dan sangat profesional. Gunakan Bahasa Indonesia yang sopan.
2. Analisis tujuan pengguna.
3. Rekomendasikan 1-2 produk spesifik yang dapat menyelesaikan masalah mereka.
4. Jelaskan MENGAPA produk ini akan membantu mereka secara spesifik.
5. Semua harga dalam katalog adalah dalam Rupiah (IDR).
6. Jaga agar respons tetap di bawah 120 kata.
7. KRITIS: Saat menyarankan produk, WAJIB sertakan ID-nya di akhir pesan Anda dalam format ini: [PRODUCT_ID:id_disini].
`

// BuildCatalogContext renders a capped slice of the catalog for the
// assistant prompt. Only id, name, category, price and seed rating are
// shared with the remote service.
func BuildCatalogContext(products []models.Product) string {
	if len(products) > catalogContextCap {
		products = products[:catalogContextCap]
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("ID: %s, Nama: %s, Kategori: %s, Harga: Rp %s, Rating: %.1f",
			p.ID, p.Name, p.Category, FormatRupiah(p.Price), p.Rating))
	}
	return strings.Join(lines, "\n")
}

// GetRecommendation asks the remote model for product advice grounded
// in the catalog sample.
func GetRecommendation(goal string, products []models.Product) (string, error) {
	cfg := config.AppConfig
	if cfg.RecommendApiURL == "" {
		return "", fmt.Errorf("recommendation service is not configured")
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+cfg.RecommendApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"system_instruction": fmt.Sprintf(consultantInstruction, BuildCatalogContext(products)),
			"contents":           goal,
			"temperature":        0.8,
		}).
		Post(cfg.RecommendApiURL)
	if err != nil {
		log.Printf("Failed to reach recommendation service: %v", err)
		return "", err
	}
	if resp.StatusCode() != 200 {
		log.Printf("Recommendation service error: %s", resp.String())
		return "", fmt.Errorf("recommendation service returned %d", resp.StatusCode())
	}

	var modelResp struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &modelResp); err != nil {
		log.Printf("Failed to parse recommendation response: %v", err)
		return "", err
	}
	if modelResp.Text == "" {
		return "Saya di sini untuk membantu Anda mencapai tujuan. Bisa ceritakan lebih lanjut tentang apa yang sedang Anda pelajari?", nil
	}
	return modelResp.Text, nil
}

// productMarker matches the [PRODUCT_ID:<id>] references the assistant
// embeds in its replies.
var productMarker = regexp.MustCompile(`\[PRODUCT_ID:([^\]]+)\]`)

// Segment is one piece of an assistant reply: plain text, a resolved
// product card, or a placeholder for an id no longer in the catalog.
type Segment struct {
	Type    string          `json:"type"` // text | product | placeholder
	Text    string          `json:"text,omitempty"`
	Product *models.Product `json:"product,omitempty"`
}

// SplitRecommendation splits reply text on product markers and resolves
// each referenced id against the live catalog via lookup.
func SplitRecommendation(text string, lookup func(id string) (models.Product, bool)) []Segment {
	segments := []Segment{}
	last := 0
	for _, m := range productMarker.FindAllStringSubmatchIndex(text, -1) {
		if chunk := text[last:m[0]]; chunk != "" {
			segments = append(segments, Segment{Type: "text", Text: chunk})
		}
		id := strings.TrimSpace(text[m[2]:m[3]])
		if p, ok := lookup(id); ok {
			segments = append(segments, Segment{Type: "product", Product: &p})
		} else {
			segments = append(segments, Segment{Type: "placeholder", Text: id})
		}
		last = m[1]
	}
	if chunk := text[last:]; chunk != "" {
		segments = append(segments, Segment{Type: "text", Text: chunk})
	}
	return segments
}
