package services

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/Igormartins234/backend-ia-historia/application/ports/inbound"
	"github.com/Igormartins234/backend-ia-historia/application/ports/outbound"
	"github.com/Igormartins234/backend-ia-historia/domain"
)

// promptTemplate carries the instructions sent to the model. The reply must
// be a bare JSON object with the keys "titulo" and "conteudo"; those names
// flow through to the HTTP response untouched.
const promptTemplate = `Crie uma história baseada nos seguintes detalhes:
Título Sugerido (pode ser adaptado por você): %q
Ideia principal, tema ou elementos da história: %q

- O conteúdo deve ter pelo menos uma narrativa completa, com diálogos e descrições, deixando a história rica e interessante, com começo, meio e fim.
- personagens tem sua fala entre aspas.
- separe cada parte em parágrafos.
- a fala dos personagens deve ser em outro parágrafo.
- crie um título criativo, se necessário, prefira o título sugerido.
A história deve ser envolvente e criativa, com um começo, meio e fim.
Retorne APENAS um objeto JSON com as seguintes chaves e tipos:
- "titulo": uma string contendo o título da história.
- "conteudo": uma string contendo o corpo da história.

Exemplo do formato JSON esperado:
{
    "titulo": "O Segredo da Montanha Cintilante",
    "conteudo": "Era uma vez, em um vale escondido, uma montanha que brilhava ao luar..."
}`

const promptLogLimit = 200

type generationResult struct {
	rawText string
	err     error
}

type storyMaker struct {
	logger        outbound.LoggerPort
	textGenerator outbound.StoryTextGeneratorPort
	workerPool    outbound.TaskDispatcher
}

func NewStoryMaker(logger outbound.LoggerPort, textGenerator outbound.StoryTextGeneratorPort,
	workerPool outbound.TaskDispatcher) inbound.StoryMakerPort {
	return &storyMaker{
		logger:        logger,
		textGenerator: textGenerator,
		workerPool:    workerPool,
	}
}

func (s *storyMaker) MakeStory(ctx context.Context, params inbound.MakeStoryParams) (domain.Story, error) {
	details, err := domain.NewStoryDetails(params.Details)
	if err != nil {
		return domain.Story{}, err
	}

	prompt := fmt.Sprintf(promptTemplate, details.SuggestedTitle, details.MainPrompt)

	s.logger.DebugWithFields("Sending prompt to the AI", map[string]interface{}{
		"request_id": params.RequestID,
		"prompt":     truncate(prompt, promptLogLimit),
	})

	rawText, err := s.generate(ctx, prompt)
	if err != nil {
		return domain.Story{}, err
	}

	return s.parseStory(params.RequestID, rawText)
}

// generate runs the upstream round trip on the worker pool and blocks until
// it finishes or ctx is done. Each request owns its channel, so an abandoned
// result never blocks the worker (buffer of one).
func (s *storyMaker) generate(ctx context.Context, prompt string) (string, error) {
	resultCh := make(chan generationResult, 1)

	err := s.workerPool.Submit(func() {
		rawText, genErr := s.textGenerator.GenerateText(ctx, prompt)
		resultCh <- generationResult{rawText: rawText, err: genErr}
	})
	if err != nil {
		s.logger.Error(err, "Failed to submit generation task to worker pool")
		return "", err
	}

	select {
	case <-ctx.Done():
		return "", domain.WrapStoryError(domain.ErrorKindUpstream, "error communicating with the AI", ctx.Err())
	case result := <-resultCh:
		return result.rawText, result.err
	}
}

func (s *storyMaker) parseStory(requestID string, rawText string) (domain.Story, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		s.logger.ErrorWithFields(err, "AI reply is not valid JSON", map[string]interface{}{
			"request_id": requestID,
			"raw_text":   rawText,
		})
		return domain.Story{}, domain.WrapStoryError(domain.ErrorKindInvalidJSON,
			"error processing AI response (invalid JSON)", err)
	}

	// Valid JSON that is not an object (an array, a bare string...) is a
	// shape problem, not a parse problem.
	object, ok := parsed.(map[string]interface{})
	if !ok {
		s.logger.ErrorWithFields(nil, "AI reply is valid JSON but not an object", map[string]interface{}{
			"request_id": requestID,
			"raw_text":   rawText,
		})
		return domain.Story{}, domain.NewStoryError(domain.ErrorKindUnexpectedShape,
			"the AI returned an unexpected data format")
	}

	titulo, tituloOk := object["titulo"].(string)
	conteudo, conteudoOk := object["conteudo"].(string)
	if !tituloOk || !conteudoOk {
		s.logger.ErrorWithFields(nil, "AI reply is missing 'titulo' or 'conteudo'", map[string]interface{}{
			"request_id": requestID,
			"raw_text":   rawText,
		})
		return domain.Story{}, domain.NewStoryError(domain.ErrorKindUnexpectedShape,
			"the AI returned an unexpected data format")
	}

	s.logger.InfoWithFields("Story generated", map[string]interface{}{
		"request_id": requestID,
		"titulo":     titulo,
	})

	return domain.Story{
		Titulo:   titulo,
		Conteudo: conteudo,
	}, nil
}

// truncate cuts input to at most limit bytes without splitting a rune, so
// the accented template text stays valid UTF-8 in log output.
func truncate(input string, limit int) string {
	if len(input) <= limit {
		return input
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(input[cut]) {
		cut--
	}
	return input[:cut] + "..."
}
