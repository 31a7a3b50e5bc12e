package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/insitemarketing/metryka-api/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// clinicDocument é o formato do arquivo de clínicas
type clinicDocument struct {
	Clinics []clinicEntry `json:"clinics"`
}

type clinicEntry struct {
	Name        string  `json:"name"`
	GoogleAdsID *string `json:"Google_Ads_id"`
	MetaAdsID   *string `json:"Meta_Ads_id"`
}

// ClinicStore guarda as clínicas em um único documento JSON. Toda leitura e
// escrita passa pelo mesmo mutex, então o read-modify-write não perde
// atualizações dentro do processo.
type ClinicStore struct {
	path string
	mu   sync.Mutex
}

func NewClinicStore(path string) *ClinicStore {
	return &ClinicStore{path: path}
}

func (s *ClinicStore) InsertIfAbsent(_ context.Context, clinic *domain.Clinic) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, err
	}

	for _, entry := range doc.Clinics {
		if domain.SameName(entry.Name, clinic.Name) {
			return false, nil
		}
	}

	doc.Clinics = append(doc.Clinics, clinicEntry{
		Name:        clinic.Name,
		GoogleAdsID: clinic.GoogleAdsID,
		MetaAdsID:   clinic.MetaAdsID,
	})

	if err := s.write(doc); err != nil {
		return false, err
	}

	return true, nil
}

func (s *ClinicStore) GetByName(_ context.Context, name string) (*domain.Clinic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	for _, entry := range doc.Clinics {
		if domain.SameName(entry.Name, name) {
			return entry.toDomain(), nil
		}
	}

	return nil, nil
}

func (s *ClinicStore) DeleteByName(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, err
	}

	// documentos antigos podem ter nomes repetidos; só a primeira ocorrência sai
	idx := -1
	for i, entry := range doc.Clinics {
		if domain.SameName(entry.Name, name) {
			idx = i
			break
		}
	}

	if idx < 0 {
		return false, nil
	}

	doc.Clinics = append(doc.Clinics[:idx], doc.Clinics[idx+1:]...)
	if err := s.write(doc); err != nil {
		return false, err
	}

	return true, nil
}

func (s *ClinicStore) List(_ context.Context) ([]*domain.Clinic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}

	clinics := make([]*domain.Clinic, 0, len(doc.Clinics))
	for _, entry := range doc.Clinics {
		clinics = append(clinics, entry.toDomain())
	}

	return clinics, nil
}

// read devolve um documento vazio quando o arquivo ainda não existe
func (s *ClinicStore) read() (*clinicDocument, error) {
	doc := &clinicDocument{Clinics: []clinicEntry{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler %s", s.path)
	}

	if len(data) == 0 {
		return doc, nil
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, errors.Wrapf(err, "arquivo de clínicas inválido: %s", s.path)
	}

	return doc, nil
}

// write grava em um arquivo temporário no mesmo diretório e renomeia, para
// que um leitor nunca veja o documento pela metade
func (s *ClinicStore) write(doc *clinicDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "erro ao serializar clínicas")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmpFile, err := os.CreateTemp(dir, ".clinics-*")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "erro ao escrever arquivo temporário")
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "erro ao substituir %s", s.path)
	}

	return nil
}

func (e clinicEntry) toDomain() *domain.Clinic {
	return &domain.Clinic{
		Name:        e.Name,
		GoogleAdsID: e.GoogleAdsID,
		MetaAdsID:   e.MetaAdsID,
	}
}
