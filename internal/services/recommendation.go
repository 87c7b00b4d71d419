package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/google/uuid"
)

const (
	// Bounds the candidate pool so the oracle prompt stays small. Tunables,
	// not contracts.
	candidatePoolSize    = 50
	promptCandidateLimit = 20
	maxRecommendations   = 6
)

// Oracle ranks candidate products for a child profile. Its output is
// free-form text expected to contain a JSON array; it is treated as
// untrusted input throughout.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, userID, childID uuid.UUID) ([]models.RecommendationEntry, error)
	ListRecommendations(ctx context.Context, userID, childID uuid.UUID) ([]models.Recommendation, error)
}

type recommendationService struct {
	childRepo     repository.ChildRepository
	productRepo   repository.ProductRepository
	recRepo       repository.RecommendationRepository
	oracle        Oracle
	oracleTimeout time.Duration
}

func NewRecommendationService(childRepo repository.ChildRepository, productRepo repository.ProductRepository,
	recRepo repository.RecommendationRepository, oracle Oracle, oracleTimeout time.Duration) RecommendationService {
	return &recommendationService{
		childRepo:     childRepo,
		productRepo:   productRepo,
		recRepo:       recRepo,
		oracle:        oracle,
		oracleTimeout: oracleTimeout,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID, childID uuid.UUID) ([]models.RecommendationEntry, error) {

	child, err := s.childRepo.GetActiveChild(ctx, childID, userID)
	if err != nil {
		return nil, errors.NotFoundError("Child not found").WithError(err)
	}

	products, err := s.productRepo.ListActiveProducts(ctx, candidatePoolSize)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load catalog").WithError(err)
	}

	if len(products) == 0 {
		return []models.RecommendationEntry{}, nil
	}

	ageMonths := child.AgeInMonths(time.Now())

	var candidates []*models.Product

	for _, p := range products {
		if p.InAgeRange(ageMonths) {
			candidates = append(candidates, p)
		}
	}

	// Never end up with zero recommendations just because of an age-range
	// mismatch: fall back to the full pool.
	if len(candidates) == 0 {
		candidates = products
	}

	prompt := buildRecommendationPrompt(child, ageMonths, candidates)

	oracleCtx, cancel := context.WithTimeout(ctx, s.oracleTimeout)
	defer cancel()

	raw, err := s.oracle.Complete(oracleCtx, prompt)
	if err != nil {
		return nil, errors.ThirdPartyError("Recommendation oracle unavailable").WithError(err)
	}

	// Malformed oracle output degrades to fewer (possibly zero)
	// recommendations; it never fails the request.
	scored := parseScoredEntries(raw)

	candidateByID := make(map[uuid.UUID]*models.Product, len(candidates))
	for _, p := range candidates {
		candidateByID[p.ID] = p
	}

	var entries []models.RecommendationEntry

	for _, entry := range scored {

		if len(entries) == maxRecommendations {
			break
		}

		productID, err := uuid.Parse(entry.ProductID)
		if err != nil {
			continue
		}

		// Only products from the evaluated candidate set may be persisted.
		if _, ok := candidateByID[productID]; !ok {
			continue
		}

		entries = append(entries, models.RecommendationEntry{
			ProductID: productID,
			Score:     clampScore(entry.Score),
			Reason:    entry.Reason,
		})
	}

	for i := range entries {

		rec := &models.Recommendation{
			ChildID:   child.ID,
			ProductID: entries[i].ProductID,
			Score:     entries[i].Score,
			Reason:    entries[i].Reason,
		}

		if err := s.recRepo.Upsert(ctx, rec); err != nil {
			return nil, errors.DatabaseError("Failed to store recommendations").WithError(err)
		}
	}

	return s.attachProducts(ctx, entries)
}

// attachProducts re-fetches full product detail and joins it onto the
// entries, dropping any entry whose product vanished in the meantime.
func (s *recommendationService) attachProducts(ctx context.Context, entries []models.RecommendationEntry) ([]models.RecommendationEntry, error) {

	if len(entries) == 0 {
		return []models.RecommendationEntry{}, nil
	}

	ids := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load recommended products").WithError(err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	result := make([]models.RecommendationEntry, 0, len(entries))

	for _, e := range entries {
		if p, ok := byID[e.ProductID]; ok {
			e.Product = p
			result = append(result, e)
		}
	}

	return result, nil
}

func (s *recommendationService) ListRecommendations(ctx context.Context, userID, childID uuid.UUID) ([]models.Recommendation, error) {

	recs, err := s.recRepo.ListByChild(ctx, childID, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list recommendations").WithError(err)
	}

	if len(recs) == 0 {
		return []models.Recommendation{}, nil
	}

	ids := make([]uuid.UUID, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ProductID)
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, errors.DatabaseError("Failed to load recommended products").WithError(err)
	}

	byID := make(map[uuid.UUID]*models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	result := make([]models.Recommendation, 0, len(recs))

	for _, rec := range recs {
		if p, ok := byID[rec.ProductID]; ok {
			rec.Product = p
			result = append(result, rec)
		}
	}

	return result, nil
}

func buildRecommendationPrompt(child *models.Child, ageMonths int, candidates []*models.Product) string {

	var profile strings.Builder

	fmt.Fprintf(&profile, "Criança: %s\n", child.Name)
	fmt.Fprintf(&profile, "Gênero: %s\n", genderLabel(child.Gender))
	fmt.Fprintf(&profile, "Idade: %d anos e %d meses (%d meses no total)\n", ageMonths/12, ageMonths%12, ageMonths)
	fmt.Fprintf(&profile, "Tamanho de roupa: %s\n", child.ClothingSize)
	fmt.Fprintf(&profile, "Estilo preferido: %s\n", strings.Join(child.StylePrefs, ", "))
	fmt.Fprintf(&profile, "Ocasiões: %s\n", strings.Join(child.OccasionPrefs, ", "))
	fmt.Fprintf(&profile, "Cores preferidas: %s", strings.Join(child.ColorPrefs, ", "))

	if child.Notes != nil && *child.Notes != "" {
		fmt.Fprintf(&profile, "\nObservações: %s", *child.Notes)
	}

	if len(candidates) > promptCandidateLimit {
		candidates = candidates[:promptCandidateLimit]
	}

	lines := make([]string, 0, len(candidates))

	for _, p := range candidates {
		lines = append(lines, fmt.Sprintf("ID: %s | %s | Gênero: %s | Categoria: %s | Tags: %s | Cores: %s | Preço: R$%.2f",
			p.ID, p.Name, p.Gender, p.Category.Name, strings.Join(p.Tags, ", "), strings.Join(p.Colors, ", "), p.Price))
	}

	return fmt.Sprintf(`Você é um especialista em moda infantil da loja Visual Fashion Kids.

Perfil da criança:
%s

Produtos disponíveis:
%s

Selecione os %d produtos mais adequados para esta criança e retorne SOMENTE um JSON válido no formato:
[{"productId": "id_do_produto", "score": 0.95, "reason": "motivo em português (max 80 chars)"}]

Ordene por relevância (score 0.0 a 1.0). Considere gênero, idade, estilo, cores e ocasiões.`,
		profile.String(), strings.Join(lines, "\n"), maxRecommendations)
}

func genderLabel(g models.Gender) string {
	switch g {
	case models.GenderBoy:
		return "Menino"
	case models.GenderGirl:
		return "Menina"
	default:
		return "Unissex"
	}
}

// parseScoredEntries extracts the first top-level JSON array from the
// oracle's raw text. The oracle may wrap the array in prose; anything that
// does not contain a parseable array yields an empty set.
func parseScoredEntries(raw string) []models.ScoredEntry {

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")

	if start == -1 || end == -1 || end < start {
		return nil
	}

	var entries []models.ScoredEntry

	if err := json.Unmarshal([]byte(raw[start:end+1]), &entries); err != nil {
		return nil
	}

	return entries
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
