package memory

import (
	"context"

	"consulting-api/internal/domain"
	"consulting-api/internal/repository"
)

// SeedSampleContent loads a handful of demo records so a memory-backed dev
// instance has something to show. Intended for the memory driver only.
func SeedSampleContent(ctx context.Context, posts repository.BlogPostRepository, testimonials repository.TestimonialRepository, contacts repository.ContactRepository) error {
	samplePosts := []domain.BlogPost{
		{
			Title:    "Como implementar ChatGPT na sua empresa",
			Content:  "A implementação de IA generativa como o ChatGPT pode revolucionar a forma como sua empresa opera...",
			Category: "Tutorial",
			Author:   "Dr. Ana Silva",
			Status:   domain.PostStatusPublished,
		},
		{
			Title:    "ROI de projetos de IA: Como medir o sucesso",
			Content:  "Medir o retorno sobre investimento em projetos de IA é crucial para justificar os gastos...",
			Category: "Artigo",
			Author:   "Prof. Carlos Santos",
			Status:   domain.PostStatusDraft,
		},
	}
	for i := range samplePosts {
		if _, err := posts.Create(ctx, &samplePosts[i]); err != nil {
			return err
		}
	}

	sampleTestimonials := []domain.Testimonial{
		{
			ClientName: "João Silva",
			Company:    "TechCorp",
			Position:   "CEO",
			Text:       "A implementação da IA revolucionou nosso atendimento ao cliente. Reduzimos o tempo de resposta em 80% e aumentamos a satisfação significativamente.",
			Rating:     5,
			Status:     "active",
		},
		{
			ClientName: "Maria Oliveira",
			Company:    "InnovaCorp",
			Position:   "Diretora",
			Text:       "O ROI foi impressionante. Em 6 meses, já tínhamos recuperado todo o investimento e continuamos vendo resultados exponenciais.",
			Rating:     5,
			Status:     "active",
		},
	}
	for i := range sampleTestimonials {
		if _, err := testimonials.Create(ctx, &sampleTestimonials[i]); err != nil {
			return err
		}
	}

	sampleContacts := []domain.Contact{
		{
			Name:    "Carlos Mendes",
			Email:   "carlos@empresa.com",
			Company: "StartupTech",
			Message: "Gostaria de saber mais sobre implementação de IA para e-commerce.",
			Status:  "new",
		},
		{
			Name:    "Ana Costa",
			Email:   "ana@consultoria.com",
			Company: "ConsultPlus",
			Message: "Interessada em parceria para projetos de automação.",
			Status:  "responded",
		},
	}
	for i := range sampleContacts {
		if _, err := contacts.Create(ctx, &sampleContacts[i]); err != nil {
			return err
		}
	}

	return nil
}
