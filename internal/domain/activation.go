package domain

// Casas monitoradas pela sustentação. Somente ativações destas casas
// entram na planilha.
const (
	HouseSeteK   = "7k"
	HouseCassino = "Cassino"
	HouseVera    = "Vera"
)

// Valores usados quando o evento não possui campanha ou jogo associado
const (
	NoCampaign = "Sem Campanha"
	NoGame     = "Sem Jogo"
)

// HouseOrderDefault é a ordem atribuída a casas fora do mapa de prioridade
const HouseOrderDefault = 99

// AllowedHouses retorna a lista de casas aceitas no filtro da agregação
func AllowedHouses() []string {
	return []string{HouseCassino, HouseVera, HouseSeteK}
}

var houseOrder = map[string]int{
	HouseSeteK:   1,
	HouseCassino: 2,
	HouseVera:    3,
}

// HouseOrder retorna a chave de ordenação fixa de uma casa na planilha
func HouseOrder(house string) int {
	if order, ok := houseOrder[house]; ok {
		return order
	}
	return HouseOrderDefault
}

// ActivationSummary representa uma linha agregada de ativações por
// dia, casa, campanha e jogo. Os nomes bson seguem o resultado do
// pipeline de agregação no Mongo.
type ActivationSummary struct {
	House            string `bson:"casa"`
	Campaign         string `bson:"campanha"`
	Game             string `bson:"jogo"`
	TotalActivations int64  `bson:"totalAtivacoes"`
	Year             int    `bson:"ano"`
	Month            int    `bson:"mes"`
	Day              string `bson:"dia_str"`
	HouseOrder       int    `bson:"casa_ordem"`
}
