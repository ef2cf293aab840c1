// File: internal/model/ods.go
package model

// ODS 永續發展目標
type ODS struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// ODSCatalog 固定的 17 個目標
var ODSCatalog = []ODS{
	{ID: 1, Name: "Erradicação da Pobreza", Color: "#E5243B"},
	{ID: 2, Name: "Fome Zero", Color: "#DDA63A"},
	{ID: 3, Name: "Saúde e Bem-Estar", Color: "#4C9F38"},
	{ID: 4, Name: "Educação de Qualidade", Color: "#C5192D"},
	{ID: 5, Name: "Igualdade de Gênero", Color: "#FF3A21"},
	{ID: 6, Name: "Água Potável e Saneamento", Color: "#26BDE2"},
	{ID: 7, Name: "Energia Limpa e Acessível", Color: "#FCC30B"},
	{ID: 8, Name: "Trabalho Decente", Color: "#A21942"},
	{ID: 9, Name: "Inovação e Infraestrutura", Color: "#FD6925"},
	{ID: 10, Name: "Redução das Desigualdades", Color: "#DD1367"},
	{ID: 11, Name: "Cidades Sustentáveis", Color: "#FD9D24"},
	{ID: 12, Name: "Consumo Responsável", Color: "#BF8B2E"},
	{ID: 13, Name: "Ação Contra Mudança Climática", Color: "#3F7E44"},
	{ID: 14, Name: "Vida na Água", Color: "#0A97D9"},
	{ID: 15, Name: "Vida Terrestre", Color: "#56C02B"},
	{ID: 16, Name: "Paz e Justiça", Color: "#00689D"},
	{ID: 17, Name: "Parcerias", Color: "#19486A"},
}

// LookupODS 依 id 取得目標
func LookupODS(id int) (ODS, bool) {
	if id < 1 || id > len(ODSCatalog) {
		return ODS{}, false
	}
	return ODSCatalog[id-1], true
}
