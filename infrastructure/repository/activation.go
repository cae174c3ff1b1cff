package repository

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/infrastructure/database/mongodb"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/config"
	"github.com/juliosilva-anagaming/Suporte-Sustenta-o/internal/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Erros do acesso à base de ativações
var (
	ErrMissingMongoURI = stderrors.New("MONGO_URI não definido no .env")
	ErrUnavailable     = stderrors.New("falha ao conectar no MongoDB")
	ErrQueryTimeout    = stderrors.New("aggregate excedeu o tempo limite no MongoDB")
)

// maxTimeMSExpiredCode é o código retornado pelo Mongo quando o
// aggregate estoura o maxTimeMS
const maxTimeMSExpiredCode = 50

type ActivationRepository interface {
	AggregateByDay(ctx context.Context, start, end time.Time, houses []string) ([]*domain.ActivationSummary, error)
}

type activationRepository struct {
	cfg config.Mongo
}

func NewActivationRepository(cfg config.Mongo) ActivationRepository {
	return &activationRepository{
		cfg: cfg,
	}
}

// AggregateByDay executa o pipeline de agregação de ativações no período
// [start, end], agrupando por dia, casa, campanha e jogo. A conexão é
// aberta por execução, como no fluxo original de sustentação: a URI pode
// mudar entre deploys e a sincronização é um job esporádico.
func (r *activationRepository) AggregateByDay(
	ctx context.Context,
	start, end time.Time,
	houses []string,
) ([]*domain.ActivationSummary, error) {
	if r.cfg.URI == "" {
		return nil, ErrMissingMongoURI
	}

	conn, err := mongodb.NewConnection(ctx, r.cfg)
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	defer func() {
		if err := conn.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("Erro ao encerrar conexão com o MongoDB")
		}
	}()

	collection := conn.Collection(r.cfg.Collection)

	opts := options.Aggregate().
		SetAllowDiskUse(true).
		SetMaxTime(r.cfg.AggregateMaxTime) // evita ficar infinito "pingando"

	cursor, err := collection.Aggregate(ctx, aggregationPipeline(start, end, houses), opts)
	if err != nil {
		return nil, classifyAggregateError(err)
	}
	defer cursor.Close(ctx)

	summaries := make([]*domain.ActivationSummary, 0)
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, classifyAggregateError(err)
	}

	return summaries, nil
}

// aggregationPipeline monta o pipeline: filtro por casa e período,
// agrupamento com contagem, projeção com derivação de data e ordenação
// fixa por prioridade de casa e dia.
func aggregationPipeline(start, end time.Time, houses []string) mongo.Pipeline {
	branches := bson.A{}
	for _, house := range houses {
		branches = append(branches, bson.D{
			{Key: "case", Value: bson.D{{Key: "$eq", Value: bson.A{"$casa", house}}}},
			{Key: "then", Value: domain.HouseOrder(house)},
		})
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "label", Value: bson.D{{Key: "$in", Value: houses}}},
			{Key: "createdAt", Value: bson.D{
				{Key: "$gte", Value: start},
				{Key: "$lte", Value: end},
			}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "dia", Value: bson.D{{Key: "$dateToString", Value: bson.D{
					{Key: "format", Value: "%Y-%m-%d"},
					{Key: "date", Value: "$createdAt"},
					{Key: "timezone", Value: "UTC"},
				}}}},
				{Key: "casa", Value: "$label"},
				{Key: "campanha", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$campaignName", domain.NoCampaign}}}},
				{Key: "jogo", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$prize", domain.NoGame}}}},
			}},
			{Key: "totalAtivacoes", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "casa", Value: "$_id.casa"},
			{Key: "campanha", Value: "$_id.campanha"},
			{Key: "jogo", Value: "$_id.jogo"},
			{Key: "totalAtivacoes", Value: 1},
			{Key: "dia_str", Value: "$_id.dia"},
			{Key: "dia_date", Value: bson.D{{Key: "$dateFromString", Value: bson.D{
				{Key: "dateString", Value: "$_id.dia"},
			}}}},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "ano", Value: bson.D{{Key: "$year", Value: "$dia_date"}}},
			{Key: "mes", Value: bson.D{{Key: "$month", Value: "$dia_date"}}},
			{Key: "casa_ordem", Value: bson.D{{Key: "$switch", Value: bson.D{
				{Key: "branches", Value: branches},
				{Key: "default", Value: domain.HouseOrderDefault},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "casa_ordem", Value: 1},
			{Key: "dia_str", Value: 1},
		}}},
	}
}

// classifyAggregateError separa estouro do orçamento de execução da
// query (maxTimeMS/deadline) de indisponibilidade do Mongo
func classifyAggregateError(err error) error {
	var cmdErr mongo.CommandError
	if stderrors.As(err, &cmdErr) && cmdErr.Code == maxTimeMSExpiredCode {
		return errors.Wrap(ErrQueryTimeout, err.Error())
	}

	if stderrors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) {
		return errors.Wrap(ErrQueryTimeout, err.Error())
	}

	return errors.Wrap(ErrUnavailable, err.Error())
}
