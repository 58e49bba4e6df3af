package mapper

import (
	"encoding/json"

	"crossword-collab-be/internal/entity"
	"crossword-collab-be/internal/model"
	"crossword-collab-be/pkg/crossword"
)

type PuzzleMapper struct{}

func NewPuzzleMapper() *PuzzleMapper {
	return &PuzzleMapper{}
}

func (m *PuzzleMapper) ToEntity(p *model.Puzzle) (*entity.Puzzle, error) {
	if p == nil {
		return nil, nil
	}

	var doc crossword.Document
	if err := json.Unmarshal(p.Document, &doc); err != nil {
		return nil, err
	}

	return &entity.Puzzle{
		Id:        p.Id,
		Title:     p.Title,
		Rows:      p.Rows,
		Cols:      p.Cols,
		Document:  doc,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (m *PuzzleMapper) ToModel(p *entity.Puzzle) (*model.Puzzle, error) {
	if p == nil {
		return nil, nil
	}

	doc, err := json.Marshal(p.Document)
	if err != nil {
		return nil, err
	}

	return &model.Puzzle{
		Id:        p.Id,
		Title:     p.Title,
		Rows:      p.Rows,
		Cols:      p.Cols,
		Document:  doc,
		CreatedAt: p.CreatedAt,
	}, nil
}

func (m *PuzzleMapper) ToEntities(puzzles []*model.Puzzle) ([]*entity.Puzzle, error) {
	entities := make([]*entity.Puzzle, len(puzzles))
	for i, p := range puzzles {
		e, err := m.ToEntity(p)
		if err != nil {
			return nil, err
		}
		entities[i] = e
	}
	return entities, nil
}
